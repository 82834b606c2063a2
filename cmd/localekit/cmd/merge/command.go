// Package merge provides the merge command implementation.
package merge

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/localekit"
	"github.com/agentstation/localekit/internal/appcontext"
	"github.com/agentstation/localekit/pkg/locales"
	"github.com/agentstation/localekit/pkg/logging"
)

// NewCommand creates the merge command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		dryRun bool
		only   []string
	)

	cmd := &cobra.Command{
		Use:     "merge <patch-file>...",
		GroupID: "core",
		Short:   "Merge translation patches into the locale documents",
		Args:    cobra.MinimumNArgs(1),
		Long: `Merge applies one or more patch files to the locale documents in the
configured directory. A patch maps locale IDs to section/key/value fragments;
applying it adds missing keys and overwrites differing values, it never
deletes anything.

Each locale is processed independently: a broken document stops that locale
only, the rest still merge. Documents are rewritten atomically with their key
order preserved, and a document the patch leaves unchanged is not touched at
all.

When several patch files are given they compose in argument order, so a value
patched by two files takes the later file's version.`,
		Example: `  localekit merge patches/vin-scanner.yaml
  localekit merge base.yaml hotfix.yaml            # hotfix.yaml wins conflicts
  localekit merge patches/vin-scanner.yaml --dry-run
  localekit merge patches/vin-scanner.yaml --locale es --locale pt-BR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())

			patches, err := loadPatches(args)
			if err != nil {
				return err
			}

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

			report, err := kit.Merge(ctx, patches, opts...)
			if err != nil {
				return err
			}

			if err := printReport(cmd, app.OutputFormat(), report); err != nil {
				return err
			}

			if !report.OK() {
				return fmt.Errorf("%d of %d locales failed to merge", len(report.Failed()), len(report.Results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing any document")
	cmd.Flags().StringSliceVar(&only, "locale", nil, "restrict the merge to these locale IDs (repeatable)")

	return cmd
}

// loadPatches loads the named patch files and composes them in argument
// order, later files winning conflicts.
func loadPatches(paths []string) (*locales.PatchSet, error) {
	patches := locales.NewPatchSet()
	for _, path := range paths {
		ps, err := locales.LoadPatchSet(path)
		if err != nil {
			return nil, err
		}
		patches.Compose(ps)
	}
	return patches, nil
}
