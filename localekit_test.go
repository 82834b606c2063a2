package localekit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/localekit/pkg/locales"
)

// writeLocaleDir builds a locale directory from locale -> document JSON.
func writeLocaleDir(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for locale, content := range docs {
		path := filepath.Join(dir, locale+".json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestNewDefaults(t *testing.T) {
	kit, err := New()
	require.NoError(t, err)
	assert.Equal(t, "public/translations", kit.Dir())
}

func TestNewWithDir(t *testing.T) {
	kit, err := New(WithDir("i18n"))
	require.NoError(t, err)
	assert.Equal(t, "i18n", kit.Dir())
}

func TestNewRejectsEmptyDir(t *testing.T) {
	_, err := New(WithDir(""))
	require.Error(t, err)
}

func TestLocales(t *testing.T) {
	dir := writeLocaleDir(t, map[string]string{
		"en":    `{"hub": {"title": "t"}}`,
		"es":    `{"hub": {"title": "t"}}`,
		"pt-BR": `{"hub": {"title": "t"}}`,
	})

	kit, err := New(WithDir(dir))
	require.NoError(t, err)

	ids, err := kit.Locales()
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "es", "pt-BR"}, ids)
}

func TestDocument(t *testing.T) {
	dir := writeLocaleDir(t, map[string]string{
		"en": `{"hub": {"title": "VIN Scanner"}}`,
	})

	kit, err := New(WithDir(dir))
	require.NoError(t, err)

	doc, err := kit.Document("en")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())

	_, err = kit.Document("xx")
	require.Error(t, err)
}

func patchSetFor(t *testing.T, yamlContent string) *locales.PatchSet {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))
	ps, err := locales.LoadPatchSet(path)
	require.NoError(t, err)
	return ps
}
