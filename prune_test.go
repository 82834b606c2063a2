package localekit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneRemovesStaleKeys(t *testing.T) {
	dir := writeLocaleDir(t, map[string]string{
		"en": `{"hub": {"title": "t"}}`,
		"es": `{"hub": {"title": "x", "legacy": "y"}, "old": {"gone": "z"}}`,
	})
	kit, err := New(WithDir(dir))
	require.NoError(t, err)

	report, err := kit.Prune(context.Background(), "en")
	require.NoError(t, err)
	require.True(t, report.OK())
	require.Len(t, report.Results, 1)

	assert.Equal(t, 2, report.Results[0].Stats.RemovedKeys)
	assert.Equal(t, 1, report.Results[0].Stats.RemovedSections)

	doc, err := kit.Document("es")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())
	_, ok := doc.Section("old")
	assert.False(t, ok)
}

func TestPruneSkipsReference(t *testing.T) {
	dir := writeLocaleDir(t, map[string]string{
		"en": `{"hub": {"title": "t", "extra": "still here"}}`,
	})
	kit, err := New(WithDir(dir))
	require.NoError(t, err)

	report, err := kit.Prune(context.Background(), "en")
	require.NoError(t, err)
	assert.Empty(t, report.Results)

	doc, err := kit.Document("en")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Len())
}

func TestPruneDryRun(t *testing.T) {
	original := `{"hub": {"title": "x", "legacy": "y"}}`
	dir := writeLocaleDir(t, map[string]string{
		"en": `{"hub": {"title": "t"}}`,
		"es": original,
	})
	kit, err := New(WithDir(dir))
	require.NoError(t, err)

	report, err := kit.Prune(context.Background(), "en", WithDryRun(true))
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	require.Len(t, report.Results, 1)
	assert.Equal(t, 1, report.Results[0].Stats.RemovedKeys)

	data, err := os.ReadFile(filepath.Join(dir, "es.json"))
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestPruneFailureIsolation(t *testing.T) {
	dir := writeLocaleDir(t, map[string]string{
		"en": `{"hub": {"title": "t"}}`,
		"es": `{"hub": broken`,
		"fr": `{"hub": {"title": "x", "stale": "y"}}`,
	})
	kit, err := New(WithDir(dir))
	require.NoError(t, err)

	report, err := kit.Prune(context.Background(), "en")
	require.NoError(t, err)
	assert.False(t, report.OK())

	doc, err := kit.Document("fr")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())
}
