package locales

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/localekit/pkg/errors"
)

// PatchSet is a locale-indexed collection of patches loaded from a patch
// file. Each patch is itself an ordered section -> key -> value document;
// applying one never deletes keys, it only adds or overwrites.
//
// Patch files map locale IDs to document fragments, mirroring how the
// translations are maintained:
//
//	en:
//	  vin_scanner_hub:
//	    title: "VIN Scanner"
//	es:
//	  vin_scanner_hub:
//	    title: "Escáner VIN"
type PatchSet struct {
	locales  []string
	byLocale map[string]*Document
}

// NewPatchSet creates an empty patch set.
func NewPatchSet() *PatchSet {
	return &PatchSet{
		byLocale: make(map[string]*Document),
	}
}

// Locales returns the patched locale IDs in file order.
func (ps *PatchSet) Locales() []string {
	return ps.locales
}

// Patch returns the patch for a locale, if present.
func (ps *PatchSet) Patch(locale string) (*Document, bool) {
	p, ok := ps.byLocale[locale]
	return p, ok
}

// EnsurePatch returns the patch for a locale, creating an empty one if
// needed.
func (ps *PatchSet) EnsurePatch(locale string) *Document {
	if p, ok := ps.byLocale[locale]; ok {
		return p
	}
	p := NewDocument()
	ps.locales = append(ps.locales, locale)
	ps.byLocale[locale] = p
	return p
}

// Compose overlays later onto ps. Where both patch the same key the later
// value wins; everything else is kept. Used when several patch files are
// applied in one run: composition order is the argument order, so the last
// file named on the command line takes precedence.
func (ps *PatchSet) Compose(later *PatchSet) {
	for _, locale := range later.Locales() {
		patch, _ := later.Patch(locale)
		Apply(ps.EnsurePatch(locale), patch)
	}
}

// TotalKeys returns the number of keys across every locale's patch.
func (ps *PatchSet) TotalKeys() int {
	n := 0
	for _, p := range ps.byLocale {
		n += p.Len()
	}
	return n
}

// EncodeYAML serializes the patch set as an order-preserving YAML mapping,
// the same shape LoadPatchSet reads.
func (ps *PatchSet) EncodeYAML() ([]byte, error) {
	root := make(yaml.MapSlice, 0, len(ps.locales))
	for _, locale := range ps.locales {
		root = append(root, yaml.MapItem{Key: locale, Value: ps.byLocale[locale].mapSlice()})
	}
	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return data, nil
}

// Save writes the patch set to path as YAML, atomically.
func (ps *PatchSet) Save(path string) error {
	data, err := ps.EncodeYAML()
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// LoadPatchSet reads a patch file. The format is chosen by extension:
// .yaml/.yml are parsed with goccy/go-yaml, anything else as JSON. Both
// parsers preserve the file's key order.
func LoadPatchSet(path string) (*PatchSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodePatchYAML(data, path)
	default:
		return decodePatchJSON(data, path)
	}
}

// decodePatchJSON parses a locale -> section -> key -> value JSON object.
func decodePatchJSON(data []byte, file string) (*PatchSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.NewParseError("json", file, err.Error(), err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.NewSchemaError(file, "", "", "patch root must be an object keyed by locale")
	}

	ps := NewPatchSet()
	for dec.More() {
		localeTok, err := dec.Token()
		if err != nil {
			return nil, errors.NewParseError("json", file, err.Error(), err)
		}
		locale := localeTok.(string)

		tok, err := dec.Token()
		if err != nil {
			return nil, errors.NewParseError("json", file, err.Error(), err)
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return nil, errors.NewSchemaError(file, locale, "", "locale patch must be an object")
		}

		if err := decodeSections(dec, ps.EnsurePatch(locale), file); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // closing brace of patch root
		return nil, errors.NewParseError("json", file, err.Error(), err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NewParseError("json", file, "trailing data after patch", nil)
	}

	return ps, nil
}

// decodePatchYAML parses the same shape from YAML, keeping mapping order via
// yaml.MapSlice.
func decodePatchYAML(data []byte, file string) (*PatchSet, error) {
	var root yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap()); err != nil {
		return nil, errors.WrapParse("yaml", file, err)
	}

	ps := NewPatchSet()
	for _, localeItem := range root {
		locale, ok := localeItem.Key.(string)
		if !ok {
			return nil, errors.NewSchemaError(file, "", "", "locale ID must be a string")
		}
		sections, ok := localeItem.Value.(yaml.MapSlice)
		if !ok {
			return nil, errors.NewSchemaError(file, locale, "", "locale patch must be a mapping")
		}

		patch := ps.EnsurePatch(locale)
		for _, sectionItem := range sections {
			name, ok := sectionItem.Key.(string)
			if !ok {
				return nil, errors.NewSchemaError(file, locale, "", "section name must be a string")
			}
			entries, ok := sectionItem.Value.(yaml.MapSlice)
			if !ok {
				return nil, errors.NewSchemaError(file, name, "", "section value must be a mapping")
			}

			sec := patch.EnsureSection(name)
			for _, entry := range entries {
				key, ok := entry.Key.(string)
				if !ok {
					return nil, errors.NewSchemaError(file, name, "", "key must be a string")
				}
				value, ok := entry.Value.(string)
				if !ok {
					return nil, errors.NewSchemaError(file, name, key, "value must be a string")
				}
				sec.Set(key, value)
			}
		}
	}

	return ps, nil
}
