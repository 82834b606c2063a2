package merge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/localekit"
	"github.com/agentstation/localekit/internal/appcontext"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func mockFor(t *testing.T, dir, format string) *appcontext.Mock {
	t.Helper()
	return &appcontext.Mock{
		LocalekitFunc: func() (localekit.Client, error) {
			return localekit.New(localekit.WithDir(dir))
		},
		OutputFormatFunc: func() string { return format },
	}
}

func run(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.json", `{"hub": {"title": "Old"}}`)
	writeFile(t, dir, "es.json", `{"hub": {}}`)
	patch := writeFile(t, dir, "patch.yaml", "en:\n  hub:\n    title: \"New\"\nes:\n  hub:\n    title: \"Nuevo\"\n")

	out, err := run(t, mockFor(t, dir, "text"), patch)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ en: 0 added, 1 updated")
	assert.Contains(t, out, "✅ es: 1 added, 0 updated")
	assert.Contains(t, out, "Merged 2/2 locales (1 added, 1 updated)")

	data, err := os.ReadFile(filepath.Join(dir, "es.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Nuevo")
}

func TestMergeCommandFailureExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.json", `{"hub": {"title": "Old"}}`)
	writeFile(t, dir, "es.json", `{"hub": broken`)
	patch := writeFile(t, dir, "patch.yaml", "en:\n  hub:\n    title: \"New\"\nes:\n  hub:\n    title: \"Nuevo\"\n")

	out, err := run(t, mockFor(t, dir, "text"), patch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 locales failed")
	assert.Contains(t, out, "❌ es:")

	// the healthy locale was still written
	data, readErr := os.ReadFile(filepath.Join(dir, "en.json"))
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "New")
}

func TestMergeCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	original := `{"hub": {"title": "Old"}}`
	writeFile(t, dir, "en.json", original)
	patch := writeFile(t, dir, "patch.yaml", "en:\n  hub:\n    title: \"New\"\n")

	out, err := run(t, mockFor(t, dir, "text"), patch, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")

	data, readErr := os.ReadFile(filepath.Join(dir, "en.json"))
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data))
}

func TestMergeCommandComposesPatchFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.json", `{"hub": {}}`)
	base := writeFile(t, dir, "base.yaml", "en:\n  hub:\n    title: \"Base\"\n")
	hotfix := writeFile(t, dir, "hotfix.yaml", "en:\n  hub:\n    title: \"Hotfix\"\n")

	_, err := run(t, mockFor(t, dir, "text"), base, hotfix)
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(dir, "en.json"))
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "Hotfix")
}

func TestMergeCommandJSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.json", `{"hub": {}}`)
	patch := writeFile(t, dir, "patch.yaml", "en:\n  hub:\n    title: \"New\"\n")

	out, err := run(t, mockFor(t, dir, "json"), patch)
	require.NoError(t, err)
	assert.Contains(t, out, `"succeeded": 1`)
	assert.Contains(t, out, `"locale": "en"`)
}

func TestMergeCommandRequiresPatchFile(t *testing.T) {
	_, err := run(t, mockFor(t, t.TempDir(), "text"))
	require.Error(t, err)
}

func TestMergeCommandMissingPatchFile(t *testing.T) {
	_, err := run(t, mockFor(t, t.TempDir(), "text"), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
