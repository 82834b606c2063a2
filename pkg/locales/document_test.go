package locales

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/localekit/pkg/errors"
)

const sampleDocument = `{
  "vin_scanner_hub": {
    "title": "VIN Scanner",
    "subtitle": "Scan or enter a VIN",
    "cta": "Scan now"
  },
  "report": {
    "owners": "{{count}} previous owners"
  }
}
`

func TestDecodePreservesOrder(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument), "en.json")
	require.NoError(t, err)

	sections := doc.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "vin_scanner_hub", sections[0].Name())
	assert.Equal(t, "report", sections[1].Name())
	assert.Equal(t, []string{"title", "subtitle", "cta"}, sections[0].Keys())

	value, ok := sections[0].Get("title")
	require.True(t, ok)
	assert.Equal(t, "VIN Scanner", value)
	assert.Equal(t, 4, doc.Len())
}

func TestEncodeRoundTrip(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument), "en.json")
	require.NoError(t, err)

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, sampleDocument, string(out))
}

func TestEncodeEmptyDocument(t *testing.T) {
	out, err := NewDocument().Encode()
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))
}

func TestEncodeLiteralUnicode(t *testing.T) {
	doc := NewDocument()
	doc.EnsureSection("report").Set("owners", "Propriétaires & <données>")

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Propriétaires & <données>")
	assert.NotContains(t, string(out), `\u`)
}

func TestDecodeRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array root", `["a"]`},
		{"string section", `{"hub": "oops"}`},
		{"number value", `{"hub": {"count": 3}}`},
		{"nested object value", `{"hub": {"inner": {"too": "deep"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), "bad.json")
			require.Error(t, err)
			var schemaErr *errors.SchemaError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{"hub": {`), "bad.json")
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	_, err := Decode([]byte("{}\n{}"), "bad.json")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "xx.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Len())
}

func TestSectionSetAndDelete(t *testing.T) {
	sec := NewDocument().EnsureSection("hub")

	assert.False(t, sec.Set("title", "first"))
	assert.True(t, sec.Set("title", "second"))
	assert.Equal(t, []string{"title"}, sec.Keys())

	value, _ := sec.Get("title")
	assert.Equal(t, "second", value)

	assert.True(t, sec.Delete("title"))
	assert.False(t, sec.Delete("title"))
	assert.Zero(t, sec.Len())
}

func TestDeleteSectionKeepsOrder(t *testing.T) {
	doc := NewDocument()
	doc.EnsureSection("a").Set("k", "v")
	doc.EnsureSection("b").Set("k", "v")
	doc.EnsureSection("c").Set("k", "v")

	require.True(t, doc.DeleteSection("b"))
	require.False(t, doc.DeleteSection("b"))

	sections := doc.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "a", sections[0].Name())
	assert.Equal(t, "c", sections[1].Name())
}
