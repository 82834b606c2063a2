package locales

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/localekit/pkg/constants"
	"github.com/agentstation/localekit/pkg/errors"
	"github.com/agentstation/localekit/pkg/save"
)

// Save serializes the document. With save.WithPath the document replaces the
// file atomically: the bytes are written to a temporary file in the same
// directory and renamed over the target, so a failed write leaves the prior
// version intact. With save.WithWriter the bytes go to the writer as-is.
func (d *Document) Save(opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)

	data, err := d.encodeAs(options.Format())
	if err != nil {
		return err
	}

	if w := options.Writer(); w != nil {
		_, err := w.Write(data)
		return errors.WrapIO("write", "", err)
	}

	path := options.Path()
	if path == "" {
		return &errors.ConfigError{
			Component: "save",
			Message:   "no path or writer configured",
		}
	}
	return writeFileAtomic(path, data)
}

// encodeAs serializes the document in the given format.
func (d *Document) encodeAs(format save.Format) ([]byte, error) {
	switch format {
	case save.FormatYAML:
		data, err := yaml.Marshal(d.mapSlice())
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	default:
		return d.Encode()
	}
}

// mapSlice converts the document to an order-preserving yaml.MapSlice.
func (d *Document) mapSlice() yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(d.sections))
	for _, sec := range d.sections {
		inner := make(yaml.MapSlice, 0, len(sec.keys))
		for _, key := range sec.keys {
			inner = append(inner, yaml.MapItem{Key: key, Value: sec.values[key]})
		}
		out = append(out, yaml.MapItem{Key: sec.name, Value: inner})
	}
	return out
}

// writeFileAtomic writes data to path via a temporary file and rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("sync", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", path, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
