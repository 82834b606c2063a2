// Package locales implements loading, merging, validating, and saving of
// per-locale translation documents. A locale document is an ordered mapping
// of section names to key/value string pairs, stored as one JSON file per
// locale (en.json, es.json, pt-BR.json, ...).
//
// Documents preserve insertion order across a load/save cycle so that
// version-control diffs stay minimal: existing sections and keys keep their
// position, new keys are appended to their section.
package locales

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/agentstation/localekit/pkg/constants"
	"github.com/agentstation/localekit/pkg/errors"
)

// Document is an ordered locale document: section name -> key -> value.
// The zero value is not usable; use NewDocument or Load.
type Document struct {
	sections []*Section
	byName   map[string]*Section
}

// Section is an ordered key/value mapping within a document.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

// NewDocument creates an empty locale document.
func NewDocument() *Document {
	return &Document{
		byName: make(map[string]*Section),
	}
}

// Sections returns the document's sections in insertion order.
func (d *Document) Sections() []*Section {
	return d.sections
}

// Section returns the named section, if present.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.byName[name]
	return s, ok
}

// EnsureSection returns the named section, creating an empty one at the end
// of the document if it does not exist yet.
func (d *Document) EnsureSection(name string) *Section {
	if s, ok := d.byName[name]; ok {
		return s
	}
	s := &Section{
		name:   name,
		values: make(map[string]string),
	}
	d.sections = append(d.sections, s)
	d.byName[name] = s
	return s
}

// DeleteSection removes the named section and all its keys, preserving the
// order of the remaining sections. It reports whether the section existed.
func (d *Document) DeleteSection(name string) bool {
	if _, ok := d.byName[name]; !ok {
		return false
	}
	delete(d.byName, name)
	for i, s := range d.sections {
		if s.name == name {
			d.sections = append(d.sections[:i], d.sections[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the total number of keys across all sections.
func (d *Document) Len() int {
	n := 0
	for _, s := range d.sections {
		n += len(s.keys)
	}
	return n
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Keys returns the section's keys in insertion order.
func (s *Section) Keys() []string {
	return s.keys
}

// Get returns the value for key, if present.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set inserts or overwrites key. New keys are appended after existing ones;
// overwrites keep the key's position. It reports whether the key existed.
func (s *Section) Set(key, value string) bool {
	_, existed := s.values[key]
	if !existed {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
	return existed
}

// Delete removes key from the section, preserving the order of the rest.
// It reports whether the key existed.
func (s *Section) Delete(key string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of keys in the section.
func (s *Section) Len() int {
	return len(s.keys)
}

// Load reads and parses the locale document at path.
//
// A missing file surfaces as an *errors.IOError wrapping fs.ErrNotExist,
// invalid JSON as an *errors.ParseError, and valid JSON of the wrong shape
// (non-object root, non-object section, non-string value) as an
// *errors.SchemaError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Decode(data, path)
}

// Decode parses a locale document from raw JSON. The file argument is used
// for error reporting only.
func Decode(data []byte, file string) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.NewParseError("json", file, err.Error(), err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.NewSchemaError(file, "", "", "document root must be an object")
	}

	doc := NewDocument()
	if err := decodeSections(dec, doc, file); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NewParseError("json", file, "trailing data after document", nil)
	}

	return doc, nil
}

// decodeSections parses section entries into doc until the enclosing object
// ends, consuming the closing brace. The decoder must be positioned just
// after the opening brace.
func decodeSections(dec *json.Decoder, doc *Document, file string) error {
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return errors.NewParseError("json", file, err.Error(), err)
		}
		name := nameTok.(string)

		tok, err := dec.Token()
		if err != nil {
			return errors.NewParseError("json", file, err.Error(), err)
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return errors.NewSchemaError(file, name, "", "section value must be an object")
		}

		sec := doc.EnsureSection(name)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return errors.NewParseError("json", file, err.Error(), err)
			}
			key := keyTok.(string)

			valTok, err := dec.Token()
			if err != nil {
				return errors.NewParseError("json", file, err.Error(), err)
			}
			value, ok := valTok.(string)
			if !ok {
				return errors.NewSchemaError(file, name, key, "value must be a string")
			}
			sec.Set(key, value)
		}
		if _, err := dec.Token(); err != nil { // closing brace of section
			return errors.NewParseError("json", file, err.Error(), err)
		}
	}
	if _, err := dec.Token(); err != nil { // closing brace of enclosing object
		return errors.NewParseError("json", file, err.Error(), err)
	}
	return nil
}

// Encode serializes the document to indented JSON with a trailing newline.
// Non-ASCII characters are written literally, matching how the documents are
// authored, and the output is byte-stable for an unchanged document.
func (d *Document) Encode() ([]byte, error) {
	indent := constants.DocumentIndent
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range d.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n" + indent)
		if err := writeJSONString(&buf, sec.name); err != nil {
			return nil, err
		}
		buf.WriteString(": {")
		for j, key := range sec.keys {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString("\n" + indent + indent)
			if err := writeJSONString(&buf, key); err != nil {
				return nil, err
			}
			buf.WriteString(": ")
			if err := writeJSONString(&buf, sec.values[key]); err != nil {
				return nil, err
			}
		}
		if len(sec.keys) > 0 {
			buf.WriteString("\n" + indent)
		}
		buf.WriteByte('}')
	}
	if len(d.sections) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// writeJSONString appends the JSON encoding of s without HTML escaping, so
// characters like & and < survive a save verbatim.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(b.Bytes(), "\n"))
	return nil
}
