package locales

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/agentstation/localekit/pkg/constants"
	"github.com/agentstation/localekit/pkg/errors"
)

// ParseLocale validates a locale ID and returns its canonical BCP 47 form
// (en, es, pt-BR, ...).
func ParseLocale(id string) (string, error) {
	tag, err := language.Parse(id)
	if err != nil {
		return "", errors.NewValidationError("locale", id, "not a valid BCP 47 language tag")
	}
	return tag.String(), nil
}

// DocumentPath returns the conventional path of a locale's document.
func DocumentPath(dir, locale string) string {
	return filepath.Join(dir, locale+constants.DocumentExtension)
}

// Discover lists the locales present in dir, sorted. A file counts as a
// locale document when it has the document extension and its stem parses as
// a language tag; anything else in the directory is ignored.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapIO("read", dir, err)
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, constants.DocumentExtension) {
			continue
		}
		stem := strings.TrimSuffix(name, constants.DocumentExtension)
		if _, err := language.Parse(stem); err != nil {
			continue
		}
		out = append(out, stem)
	}
	sort.Strings(out)
	return out, nil
}
