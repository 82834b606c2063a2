package merge

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/localekit"
	"github.com/agentstation/localekit/internal/cmd/output"
)

// localeRow is the serializable per-locale merge outcome.
type localeRow struct {
	Locale  string `json:"locale" yaml:"locale"`
	Path    string `json:"path" yaml:"path"`
	Added   int    `json:"added" yaml:"added"`
	Updated int    `json:"updated" yaml:"updated"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// reportView is the serializable shape of a merge report.
type reportView struct {
	DryRun    bool        `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Results   []localeRow `json:"results" yaml:"results"`
	Added     int         `json:"added" yaml:"added"`
	Updated   int         `json:"updated" yaml:"updated"`
	Succeeded int         `json:"succeeded" yaml:"succeeded"`
	Failed    int         `json:"failed" yaml:"failed"`
}

func buildView(report *localekit.Report) reportView {
	view := reportView{
		DryRun:  report.DryRun,
		Results: make([]localeRow, 0, len(report.Results)),
		Added:   report.Totals.Added,
		Updated: report.Totals.Updated,
	}
	for _, result := range report.Results {
		row := localeRow{
			Locale:  result.Locale,
			Path:    result.Path,
			Added:   result.Stats.Added,
			Updated: result.Stats.Updated,
		}
		if result.Err != nil {
			row.Error = result.Err.Error()
			view.Failed++
		} else {
			view.Succeeded++
		}
		view.Results = append(view.Results, row)
	}
	return view
}

// printReport renders the merge report in the requested format.
func printReport(cmd *cobra.Command, format string, report *localekit.Report) error {
	view := buildView(report)
	if output.Structured(format) {
		return output.Render(cmd.OutOrStdout(), format, view)
	}

	for _, row := range view.Results {
		if row.Error != "" {
			cmd.Printf("❌ %s: %s\n", row.Locale, row.Error)
			continue
		}
		cmd.Printf("✅ %s: %d added, %d updated\n", row.Locale, row.Added, row.Updated)
	}

	if view.DryRun {
		cmd.Printf("\nDry run: no documents were written.\n")
	}
	cmd.Printf("\nMerged %d/%d locales (%d added, %d updated)\n",
		view.Succeeded, len(view.Results), view.Added, view.Updated)
	return nil
}
