package localekit

import (
	"context"

	"github.com/agentstation/localekit/pkg/errors"
	"github.com/agentstation/localekit/pkg/locales"
	"github.com/agentstation/localekit/pkg/logging"
)

// ValidationReport holds the cross-locale findings for a directory.
type ValidationReport struct {
	Reference string            `json:"reference"`
	Findings  []locales.Finding `json:"findings"`
	// Errors lists locales whose documents could not be loaded.
	Errors []LocaleResult `json:"-"`
}

// OK reports whether validation found nothing wrong and read every locale.
func (r *ValidationReport) OK() bool {
	return len(r.Findings) == 0 && len(r.Errors) == 0
}

// Validate compares every discovered locale against the reference locale's
// document. A locale that fails to load is recorded in Errors and skipped;
// only a missing or unreadable reference document fails the whole run.
func (c *client) Validate(ctx context.Context, reference string) (*ValidationReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logging.FromContext(ctx)

	refDoc, err := c.Document(reference)
	if err != nil {
		return nil, errors.WrapParse("json", locales.DocumentPath(c.dir, reference), err)
	}

	ids, err := c.Locales()
	if err != nil {
		return nil, err
	}

	report := &ValidationReport{Reference: reference}
	for _, locale := range ids {
		if locale == reference {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, errors.ErrCanceled
		}

		doc, err := c.Document(locale)
		if err != nil {
			log.Error().Err(err).Str("locale", locale).Msg("Skipping unreadable locale")
			report.Errors = append(report.Errors, LocaleResult{
				Locale: locale,
				Path:   locales.DocumentPath(c.dir, locale),
				Err:    err,
			})
			continue
		}

		findings := locales.Validate(refDoc, locale, doc)
		log.Debug().
			Str("locale", locale).
			Int("findings", len(findings)).
			Msg("Validated locale")
		report.Findings = append(report.Findings, findings...)
	}

	return report, nil
}
