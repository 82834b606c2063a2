// Package translate provides the translate command implementation.
package translate

import (
	"context"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/agentstation/localekit/internal/appcontext"
	"github.com/agentstation/localekit/pkg/constants"
	"github.com/agentstation/localekit/pkg/errors"
	"github.com/agentstation/localekit/pkg/locales"
	"github.com/agentstation/localekit/pkg/logging"
	translator "github.com/agentstation/localekit/pkg/translate"
)

// NewCommand creates the translate command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		target string
		source string
		model  string
		out    string
	)

	cmd := &cobra.Command{
		Use:     "translate --target <locale>",
		GroupID: "management",
		Short:   "Draft translations for keys missing from a locale",
		Long: `Translate finds every key present in the source locale (default: the
reference locale) but missing from the target locale, sends the batch to the
Gemini API, and emits the drafts as a patch file for review.

Locale documents are never written directly: apply the reviewed patch with
"localekit merge". Requires GEMINI_API_KEY or GOOGLE_API_KEY.

A target locale with no document yet is treated as empty, so translate can
bootstrap a brand-new locale.`,
		Example: `  localekit translate --target es > patches/es-drafts.yaml
  localekit translate --target pt-BR --out patches/pt-BR-drafts.yaml
  localekit translate --target fr --model gemini-2.0-flash`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			logger := app.Logger()

			if source == "" {
				source = app.ReferenceLocale()
			}
			targetID, err := locales.ParseLocale(target)
			if err != nil {
				return err
			}
			if targetID == source {
				return errors.NewValidationError("target", targetID, "target locale equals the source locale")
			}

			kit, err := app.Localekit()
			if err != nil {
				return err
			}

			sourceDoc, err := kit.Document(source)
			if err != nil {
				return err
			}

			targetDoc, err := kit.Document(targetID)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				logger.Info().Str("locale", targetID).Msg("No document yet, translating from scratch")
				targetDoc = locales.NewDocument()
			}

			backend, err := translator.NewGemini(ctx, model)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, constants.TranslateRequestTimeout)
			defer cancel()

			drafts, err := translator.Drafts(ctx, backend, source, sourceDoc, targetID, targetDoc)
			if err != nil {
				return err
			}

			if drafts.TotalKeys() == 0 {
				cmd.Printf("Nothing to translate: %q already has every %q key\n", targetID, source)
				return nil
			}

			if out != "" {
				if err := drafts.Save(out); err != nil {
					return err
				}
				cmd.Printf("✅ %d drafts written to %s\n", drafts.TotalKeys(), out)
				cmd.Printf("Review them, then apply with: localekit merge %s\n", out)
				return nil
			}

			data, err := drafts.EncodeYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "locale ID to draft translations for (required)")
	cmd.Flags().StringVar(&source, "source", "", "locale ID to translate from (default: the reference locale)")
	cmd.Flags().StringVar(&model, "model", "", "Gemini model name (default "+translator.DefaultGeminiModel+")")
	cmd.Flags().StringVar(&out, "out", "", "patch file to write (default: stdout)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
