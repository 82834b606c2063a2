// Package output renders command results in the machine-readable formats
// selected by the global --format flag. Text rendering stays in each
// command; this package only covers json and yaml.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Structured reports whether format selects a machine-readable encoding
// handled by Render.
func Structured(format string) bool {
	switch format {
	case "json", "yaml", "yml":
		return true
	}
	return false
}

// Render writes v to w in the requested format.
func Render(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
