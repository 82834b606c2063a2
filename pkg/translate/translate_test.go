package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/localekit/pkg/locales"
)

// fakeTranslator returns canned values and records the request.
type fakeTranslator struct {
	values map[string]string
	err    error
	got    Request
}

func (f *fakeTranslator) Translate(_ context.Context, req Request) (map[string]string, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.values, nil
}

func sourceDoc(t *testing.T) *locales.Document {
	t.Helper()
	doc, err := locales.Decode([]byte(`{
  "hub": {"title": "VIN Scanner", "cta": "Scan now"},
  "report": {"owners": "{{count}} previous owners"}
}`), "en.json")
	require.NoError(t, err)
	return doc
}

func TestMissing(t *testing.T) {
	target := locales.NewDocument()
	target.EnsureSection("hub").Set("title", "Escáner VIN")

	missing := Missing(sourceDoc(t), target)
	require.Len(t, missing, 2)
	assert.Equal(t, Entry{Section: "hub", Key: "cta", Value: "Scan now"}, missing[0])
	assert.Equal(t, Entry{Section: "report", Key: "owners", Value: "{{count}} previous owners"}, missing[1])
}

func TestMissingNothing(t *testing.T) {
	src := sourceDoc(t)
	assert.Empty(t, Missing(src, src))
}

func TestDraftsBuildsPatchSet(t *testing.T) {
	translator := &fakeTranslator{values: map[string]string{
		"hub.cta":       "Escanear ahora",
		"report.owners": "{{count}} dueños anteriores",
	}}
	target := locales.NewDocument()
	target.EnsureSection("hub").Set("title", "Escáner VIN")

	ps, err := Drafts(context.Background(), translator, "en", sourceDoc(t), "es", target)
	require.NoError(t, err)

	assert.Equal(t, "en", translator.got.Source)
	assert.Equal(t, "es", translator.got.Target)
	require.Len(t, translator.got.Entries, 2)

	assert.Equal(t, []string{"es"}, ps.Locales())
	assert.Equal(t, 2, ps.TotalKeys())

	patch, _ := ps.Patch("es")
	sec, ok := patch.Section("report")
	require.True(t, ok)
	owners, _ := sec.Get("owners")
	assert.Equal(t, "{{count}} dueños anteriores", owners)
}

func TestDraftsPartialResponse(t *testing.T) {
	translator := &fakeTranslator{values: map[string]string{
		"hub.cta": "Escanear ahora",
		// report.owners missing, hub.title empty
		"hub.title": "",
	}}

	ps, err := Drafts(context.Background(), translator, "en", sourceDoc(t), "es", locales.NewDocument())
	require.NoError(t, err)
	assert.Equal(t, 1, ps.TotalKeys())
}

func TestDraftsNothingMissing(t *testing.T) {
	translator := &fakeTranslator{}
	src := sourceDoc(t)

	ps, err := Drafts(context.Background(), translator, "en", src, "es", src)
	require.NoError(t, err)
	assert.Zero(t, ps.TotalKeys())
	assert.Empty(t, translator.got.Entries)
}

func TestDraftsBackendError(t *testing.T) {
	translator := &fakeTranslator{err: assert.AnError}

	_, err := Drafts(context.Background(), translator, "en", sourceDoc(t), "es", locales.NewDocument())
	require.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := buildPrompt(Request{
		Source: "en",
		Target: "es",
		Entries: []Entry{
			{Section: "report", Key: "owners", Value: "{{count}} previous owners"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, `"en"`)
	assert.Contains(t, prompt, `"es"`)
	assert.Contains(t, prompt, "report.owners")
	assert.Contains(t, prompt, "{{count}}")
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "bare object", input: `{"hub.cta": "Escanear"}`},
		{name: "fenced object", input: "```json\n{\"hub.cta\": \"Escanear\"}\n```"},
		{name: "plain fence", input: "```\n{\"hub.cta\": \"Escanear\"}\n```"},
		{name: "prose", input: "Sure! Here you go.", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := parseResponse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Escanear", out["hub.cta"])
		})
	}
}
