// Package list provides the list command implementation.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/localekit/internal/appcontext"
	"github.com/agentstation/localekit/internal/cmd/output"
	"github.com/agentstation/localekit/pkg/locales"
)

// NewCommand creates the list command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Short:   "List the locale documents in the directory",
		Example: `  localekit list
  localekit list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kit, err := app.Localekit()
			if err != nil {
				return err
			}

			ids, err := kit.Locales()
			if err != nil {
				return err
			}

			rows := make([]localeRow, 0, len(ids))
			for _, locale := range ids {
				row := localeRow{
					Locale: locale,
					Path:   locales.DocumentPath(kit.Dir(), locale),
				}
				doc, err := kit.Document(locale)
				if err != nil {
					row.Error = err.Error()
				} else {
					row.Sections = len(doc.Sections())
					row.Keys = doc.Len()
				}
				rows = append(rows, row)
			}

			return printRows(cmd, app.OutputFormat(), rows)
		},
	}

	return cmd
}

// localeRow describes one locale document.
type localeRow struct {
	Locale   string `json:"locale" yaml:"locale"`
	Path     string `json:"path" yaml:"path"`
	Sections int    `json:"sections" yaml:"sections"`
	Keys     int    `json:"keys" yaml:"keys"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// printRows renders the locale listing in the requested format.
func printRows(cmd *cobra.Command, format string, rows []localeRow) error {
	if output.Structured(format) {
		return output.Render(cmd.OutOrStdout(), format, rows)
	}

	if len(rows) == 0 {
		cmd.Printf("No locale documents found\n")
		return nil
	}
	for _, row := range rows {
		if row.Error != "" {
			cmd.Printf("%-10s %s (unreadable: %s)\n", row.Locale, row.Path, row.Error)
			continue
		}
		cmd.Printf("%-10s %4d keys in %2d sections  %s\n", row.Locale, row.Keys, row.Sections, row.Path)
	}
	return nil
}
