package locales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"no placeholders here", nil},
		{"{{count}} previous owners", []string{"count"}},
		{"{{ count }} spaced", []string{"count"}},
		{"{{b}} then {{a}} then {{b}}", []string{"a", "b"}},
		{"{not} {{one}} {{two}}", []string{"one", "two"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Placeholders(tt.value), tt.value)
	}
}

func TestValidateConsistentLocale(t *testing.T) {
	ref := docFromJSON(t, `{"hub": {"title": "VIN Scanner", "owners": "{{count}} owners"}}`)
	doc := docFromJSON(t, `{"hub": {"title": "Escáner VIN", "owners": "{{count}} dueños"}}`)

	assert.Empty(t, Validate(ref, "es", doc))
}

func TestValidateMissingKeys(t *testing.T) {
	ref := docFromJSON(t, `{"hub": {"title": "t", "cta": "c"}, "report": {"owners": "o"}}`)
	doc := docFromJSON(t, `{"hub": {"title": "t"}}`)

	findings := Validate(ref, "es", doc)
	require.Len(t, findings, 2)

	assert.Equal(t, FindingMissingKey, findings[0].Kind)
	assert.Equal(t, "hub", findings[0].Section)
	assert.Equal(t, "cta", findings[0].Key)

	assert.Equal(t, FindingMissingKey, findings[1].Kind)
	assert.Equal(t, "report", findings[1].Section)
	assert.Equal(t, "owners", findings[1].Key)
	assert.Equal(t, "es", findings[1].Locale)
}

func TestValidateExtraKeys(t *testing.T) {
	ref := docFromJSON(t, `{"hub": {"title": "t"}}`)
	doc := docFromJSON(t, `{"hub": {"title": "t", "legacy": "x"}, "old_section": {"gone": "y"}}`)

	findings := Validate(ref, "es", doc)
	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, FindingExtraKey, f.Kind)
	}
	assert.Equal(t, "legacy", findings[0].Key)
	assert.Equal(t, "old_section", findings[1].Section)
}

func TestValidatePlaceholderMismatch(t *testing.T) {
	ref := docFromJSON(t, `{"report": {"owners": "{{count}} owners in {{state}}"}}`)
	doc := docFromJSON(t, `{"report": {"owners": "{{count}} dueños"}}`)

	findings := Validate(ref, "es", doc)
	require.Len(t, findings, 1)
	assert.Equal(t, FindingPlaceholderMismatch, findings[0].Kind)
	assert.Contains(t, findings[0].Detail, "state")
	assert.Contains(t, findings[0].String(), "es/report.owners")
}
