package localekit

import (
	"context"

	"github.com/agentstation/localekit/pkg/errors"
	"github.com/agentstation/localekit/pkg/locales"
	"github.com/agentstation/localekit/pkg/logging"
	"github.com/agentstation/localekit/pkg/save"
)

// LocaleResult is the outcome of merging one locale's document.
type LocaleResult struct {
	Locale string        `json:"locale"`
	Path   string        `json:"path"`
	Stats  locales.Stats `json:"stats"`
	Err    error         `json:"-"`
}

// OK reports whether the locale was processed successfully.
func (r LocaleResult) OK() bool {
	return r.Err == nil
}

// Report aggregates per-locale merge outcomes.
type Report struct {
	Results []LocaleResult `json:"results"`
	Totals  locales.Stats  `json:"totals"`
	DryRun  bool           `json:"dry_run,omitempty"`
}

// OK reports whether every locale merged successfully.
func (r *Report) OK() bool {
	for _, result := range r.Results {
		if !result.OK() {
			return false
		}
	}
	return true
}

// Failed returns the results of locales that did not merge.
func (r *Report) Failed() []LocaleResult {
	var out []LocaleResult
	for _, result := range r.Results {
		if !result.OK() {
			out = append(out, result)
		}
	}
	return out
}

// Merge applies a patch set to the locale documents it names, one locale at
// a time: load, apply as a superset merge, save atomically. A failure on one
// locale is recorded in the Report and does not abort the others. Documents
// the patch leaves unchanged are not rewritten.
func (c *client) Merge(ctx context.Context, patches *locales.PatchSet, opts ...MergeOption) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := newMergeOptions(opts...)
	log := logging.FromContext(ctx)

	report := &Report{DryRun: options.dryRun}
	for _, locale := range patches.Locales() {
		if !options.include(locale) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, errors.ErrCanceled
		}

		patch, _ := patches.Patch(locale)
		result := c.mergeLocale(locale, patch, options)
		if result.Err != nil {
			log.Error().
				Err(result.Err).
				Str("locale", locale).
				Str("path", result.Path).
				Msg("Merge failed")
		} else {
			log.Info().
				Str("locale", locale).
				Int("added", result.Stats.Added).
				Int("updated", result.Stats.Updated).
				Msg("Merged locale")
		}

		report.Results = append(report.Results, result)
		report.Totals.Add(result.Stats)
	}

	return report, nil
}

// mergeLocale is the per-locale boundary: every error is captured in the
// result rather than propagated, keeping locales isolated from each other.
func (c *client) mergeLocale(locale string, patch *locales.Document, options *mergeOptions) LocaleResult {
	result := LocaleResult{
		Locale: locale,
		Path:   locales.DocumentPath(c.dir, locale),
	}

	doc, err := locales.Load(result.Path)
	if err != nil {
		result.Err = errors.NewMergeError(locale, result.Path, err)
		return result
	}

	result.Stats = locales.Apply(doc, patch)
	if result.Stats.Zero() || options.dryRun {
		return result
	}

	if err := doc.Save(save.WithPath(result.Path)); err != nil {
		result.Err = errors.NewMergeError(locale, result.Path, err)
	}
	return result
}
