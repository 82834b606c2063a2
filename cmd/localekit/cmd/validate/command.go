// Package validate provides the validate command implementation.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/localekit"
	"github.com/agentstation/localekit/internal/appcontext"
	"github.com/agentstation/localekit/internal/cmd/output"
	"github.com/agentstation/localekit/pkg/locales"
	"github.com/agentstation/localekit/pkg/logging"
)

// NewCommand creates the validate command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check locale documents against the reference locale",
		Long: `Validate compares every locale document against the reference locale
(--reference, default "en") and reports:

  missing_key            the reference has a key the locale lacks
  extra_key              the locale has a key the reference lacks
  placeholder_mismatch   both have the key but their {{placeholder}} tokens differ

The command exits non-zero when any finding is reported or any locale
document cannot be read.`,
		Example: `  localekit validate
  localekit validate --reference en -o json
  localekit validate -d public/translations`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())

			kit, err := app.Localekit()
			if err != nil {
				return err
			}

			report, err := kit.Validate(ctx, app.ReferenceLocale())
			if err != nil {
				return err
			}

			if err := printReport(cmd, app.OutputFormat(), report); err != nil {
				return err
			}

			if !report.OK() {
				return fmt.Errorf("%d findings, %d unreadable locales", len(report.Findings), len(report.Errors))
			}
			return nil
		},
	}

	return cmd
}

// reportView is the serializable shape of a validation report.
type reportView struct {
	Reference string            `json:"reference" yaml:"reference"`
	Findings  []locales.Finding `json:"findings" yaml:"findings"`
	Errors    []errorRow        `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// errorRow is a locale whose document could not be read.
type errorRow struct {
	Locale string `json:"locale" yaml:"locale"`
	Path   string `json:"path" yaml:"path"`
	Error  string `json:"error" yaml:"error"`
}

// printReport renders the validation report in the requested format.
func printReport(cmd *cobra.Command, format string, report *localekit.ValidationReport) error {
	view := reportView{
		Reference: report.Reference,
		Findings:  report.Findings,
	}
	for _, e := range report.Errors {
		view.Errors = append(view.Errors, errorRow{Locale: e.Locale, Path: e.Path, Error: e.Err.Error()})
	}

	if output.Structured(format) {
		return output.Render(cmd.OutOrStdout(), format, view)
	}

	for _, finding := range view.Findings {
		cmd.Printf("⚠️  %s\n", finding.String())
	}
	for _, e := range view.Errors {
		cmd.Printf("❌ %s: %s\n", e.Locale, e.Error)
	}

	if len(view.Findings) == 0 && len(view.Errors) == 0 {
		cmd.Printf("✅ All locales consistent with %q\n", view.Reference)
	} else {
		cmd.Printf("\n%d findings against reference %q\n", len(view.Findings), view.Reference)
	}
	return nil
}
