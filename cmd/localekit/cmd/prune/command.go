// Package prune provides the prune command implementation.
package prune

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/localekit"
	"github.com/agentstation/localekit/internal/appcontext"
	"github.com/agentstation/localekit/internal/cmd/output"
	"github.com/agentstation/localekit/pkg/logging"
)

// NewCommand creates the prune command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		dryRun bool
		only   []string
	)

	cmd := &cobra.Command{
		Use:     "prune",
		GroupID: "management",
		Short:   "Remove keys the reference locale no longer has",
		Long: `Prune deletes keys (and whole sections) from every locale document that
are absent from the reference locale's document. The reference locale itself
is never modified.

Use --dry-run first to see what would be removed. Like merge, each locale is
processed independently and written atomically; unchanged documents are not
rewritten.`,
		Example: `  localekit prune --dry-run
  localekit prune
  localekit prune --locale es`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())

			kit, err := app.Localekit()
			if err != nil {
				return err
			}

			var opts []localekit.MergeOption
			if dryRun {
				opts = append(opts, localekit.WithDryRun(true))
			}
			if len(only) > 0 {
				opts = append(opts, localekit.WithOnlyLocales(only...))
			}

			report, err := kit.Prune(ctx, app.ReferenceLocale(), opts...)
			if err != nil {
				return err
			}

			if err := printReport(cmd, app.OutputFormat(), report); err != nil {
				return err
			}

			if !report.OK() {
				failed := 0
				for _, result := range report.Results {
					if !result.OK() {
						failed++
					}
				}
				return fmt.Errorf("%d of %d locales failed to prune", failed, len(report.Results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report removals without writing any document")
	cmd.Flags().StringSliceVar(&only, "locale", nil, "restrict the prune to these locale IDs (repeatable)")

	return cmd
}

// localeRow is the serializable per-locale prune outcome.
type localeRow struct {
	Locale          string `json:"locale" yaml:"locale"`
	Path            string `json:"path" yaml:"path"`
	RemovedKeys     int    `json:"removed_keys" yaml:"removed_keys"`
	RemovedSections int    `json:"removed_sections" yaml:"removed_sections"`
	Error           string `json:"error,omitempty" yaml:"error,omitempty"`
}

// reportView is the serializable shape of a prune report.
type reportView struct {
	Reference string      `json:"reference" yaml:"reference"`
	DryRun    bool        `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Results   []localeRow `json:"results" yaml:"results"`
}

// printReport renders the prune report in the requested format.
func printReport(cmd *cobra.Command, format string, report *localekit.PruneReport) error {
	view := reportView{
		Reference: report.Reference,
		DryRun:    report.DryRun,
		Results:   make([]localeRow, 0, len(report.Results)),
	}
	for _, result := range report.Results {
		row := localeRow{
			Locale:          result.Locale,
			Path:            result.Path,
			RemovedKeys:     result.Stats.RemovedKeys,
			RemovedSections: result.Stats.RemovedSections,
		}
		if result.Err != nil {
			row.Error = result.Err.Error()
		}
		view.Results = append(view.Results, row)
	}

	if output.Structured(format) {
		return output.Render(cmd.OutOrStdout(), format, view)
	}

	removed := 0
	for _, row := range view.Results {
		if row.Error != "" {
			cmd.Printf("❌ %s: %s\n", row.Locale, row.Error)
			continue
		}
		if row.RemovedKeys == 0 {
			continue
		}
		removed += row.RemovedKeys
		cmd.Printf("✂️  %s: %d keys removed (%d whole sections)\n", row.Locale, row.RemovedKeys, row.RemovedSections)
	}

	if view.DryRun {
		cmd.Printf("\nDry run: no documents were written.\n")
	}
	if removed == 0 {
		cmd.Printf("Nothing to prune against reference %q\n", view.Reference)
	}
	return nil
}
