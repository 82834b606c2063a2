// Package translate drafts translations for keys that are missing from a
// target locale, using a machine-translation backend. Drafts are emitted as
// a patch set for human review; this package never writes locale documents
// itself.
package translate

import (
	"context"
	"fmt"

	"github.com/agentstation/localekit/pkg/locales"
)

// Entry is a single string to translate, addressed by section and key.
type Entry struct {
	Section string
	Key     string
	Value   string
}

// Request is a batch translation request.
type Request struct {
	// Source is the locale ID the values are written in.
	Source string
	// Target is the locale ID to translate into.
	Target string
	// Entries are the strings to translate.
	Entries []Entry
}

// Translator produces translated values for a batch of entries. Returned
// values are keyed by "section.key"; entries the backend could not translate
// are simply absent.
type Translator interface {
	Translate(ctx context.Context, req Request) (map[string]string, error)
}

// Missing lists the entries present in the source document but absent from
// the target document, in source order.
func Missing(source, target *locales.Document) []Entry {
	var out []Entry
	for _, sec := range source.Sections() {
		targetSec, ok := target.Section(sec.Name())
		for _, key := range sec.Keys() {
			if ok {
				if _, present := targetSec.Get(key); present {
					continue
				}
			}
			value, _ := sec.Get(key)
			out = append(out, Entry{Section: sec.Name(), Key: key, Value: value})
		}
	}
	return out
}

// Drafts translates every entry missing from the target document and returns
// the results as a patch set for the target locale. Entries the translator
// does not return are skipped, so a partial backend response yields a
// partial patch rather than an error.
func Drafts(ctx context.Context, t Translator, sourceLocale string, source *locales.Document, targetLocale string, target *locales.Document) (*locales.PatchSet, error) {
	missing := Missing(source, target)
	ps := locales.NewPatchSet()
	if len(missing) == 0 {
		return ps, nil
	}

	values, err := t.Translate(ctx, Request{
		Source:  sourceLocale,
		Target:  targetLocale,
		Entries: missing,
	})
	if err != nil {
		return nil, err
	}

	patch := ps.EnsurePatch(targetLocale)
	for _, entry := range missing {
		value, ok := values[entryID(entry)]
		if !ok || value == "" {
			continue
		}
		patch.EnsureSection(entry.Section).Set(entry.Key, value)
	}
	return ps, nil
}

// entryID addresses an entry in a translator response.
func entryID(e Entry) string {
	return fmt.Sprintf("%s.%s", e.Section, e.Key)
}
