package locales

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FindingKind classifies a cross-locale inconsistency.
type FindingKind string

const (
	// FindingMissingKey means the reference has a key the locale lacks.
	FindingMissingKey FindingKind = "missing_key"
	// FindingExtraKey means the locale has a key the reference lacks.
	FindingExtraKey FindingKind = "extra_key"
	// FindingPlaceholderMismatch means both have the key but their
	// {{placeholder}} tokens differ.
	FindingPlaceholderMismatch FindingKind = "placeholder_mismatch"
)

// Finding is a single inconsistency between a locale and the reference.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Locale  string      `json:"locale"`
	Section string      `json:"section"`
	Key     string      `json:"key"`
	Detail  string      `json:"detail,omitempty"`
}

// String renders the finding for console output.
func (f Finding) String() string {
	if f.Detail != "" {
		return fmt.Sprintf("%s: %s/%s.%s (%s)", f.Kind, f.Locale, f.Section, f.Key, f.Detail)
	}
	return fmt.Sprintf("%s: %s/%s.%s", f.Kind, f.Locale, f.Section, f.Key)
}

// placeholderPattern matches interpolation tokens like {{count}}.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}\s]+)\s*\}\}`)

// Placeholders returns the sorted, de-duplicated placeholder names in a
// translation value.
func Placeholders(value string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	sort.Strings(out)
	return out
}

// Validate compares a locale document against the reference document and
// reports missing keys, extra keys, and placeholder mismatches. The locale
// argument labels the findings; reference keys drive the comparison so the
// output order follows the reference document.
func Validate(reference *Document, locale string, doc *Document) []Finding {
	var findings []Finding

	for _, refSec := range reference.Sections() {
		sec, ok := doc.Section(refSec.Name())
		for _, key := range refSec.Keys() {
			if !ok {
				findings = append(findings, Finding{
					Kind: FindingMissingKey, Locale: locale, Section: refSec.Name(), Key: key,
				})
				continue
			}
			value, present := sec.Get(key)
			if !present {
				findings = append(findings, Finding{
					Kind: FindingMissingKey, Locale: locale, Section: refSec.Name(), Key: key,
				})
				continue
			}
			refValue, _ := refSec.Get(key)
			want := Placeholders(refValue)
			got := Placeholders(value)
			if !equalStrings(want, got) {
				findings = append(findings, Finding{
					Kind:    FindingPlaceholderMismatch,
					Locale:  locale,
					Section: refSec.Name(),
					Key:     key,
					Detail:  fmt.Sprintf("want {{%s}}, got {{%s}}", strings.Join(want, "}} {{"), strings.Join(got, "}} {{")),
				})
			}
		}
	}

	for _, sec := range doc.Sections() {
		refSec, ok := reference.Section(sec.Name())
		for _, key := range sec.Keys() {
			if ok {
				if _, present := refSec.Get(key); present {
					continue
				}
			}
			findings = append(findings, Finding{
				Kind: FindingExtraKey, Locale: locale, Section: sec.Name(), Key: key,
			})
		}
	}

	return findings
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
