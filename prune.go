package localekit

import (
	"context"

	"github.com/agentstation/localekit/pkg/errors"
	"github.com/agentstation/localekit/pkg/locales"
	"github.com/agentstation/localekit/pkg/logging"
	"github.com/agentstation/localekit/pkg/save"
)

// PruneResult is the outcome of pruning one locale's document.
type PruneResult struct {
	Locale string             `json:"locale"`
	Path   string             `json:"path"`
	Stats  locales.PruneStats `json:"stats"`
	Err    error              `json:"-"`
}

// OK reports whether the locale was pruned successfully.
func (r PruneResult) OK() bool {
	return r.Err == nil
}

// PruneReport aggregates per-locale prune outcomes.
type PruneReport struct {
	Reference string        `json:"reference"`
	Results   []PruneResult `json:"results"`
	DryRun    bool          `json:"dry_run,omitempty"`
}

// OK reports whether every locale pruned successfully.
func (r *PruneReport) OK() bool {
	for _, result := range r.Results {
		if !result.OK() {
			return false
		}
	}
	return true
}

// Prune removes keys that the reference locale's document no longer
// contains from every other locale. Like Merge, each locale is processed
// independently and saved atomically; unchanged documents are not
// rewritten.
func (c *client) Prune(ctx context.Context, reference string, opts ...MergeOption) (*PruneReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := newMergeOptions(opts...)
	log := logging.FromContext(ctx)

	refDoc, err := c.Document(reference)
	if err != nil {
		return nil, errors.WrapParse("json", locales.DocumentPath(c.dir, reference), err)
	}

	ids, err := c.Locales()
	if err != nil {
		return nil, err
	}

	report := &PruneReport{Reference: reference, DryRun: options.dryRun}
	for _, locale := range ids {
		if locale == reference || !options.include(locale) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, errors.ErrCanceled
		}

		result := c.pruneLocale(locale, refDoc, options)
		if result.Err != nil {
			log.Error().Err(result.Err).Str("locale", locale).Msg("Prune failed")
		} else if !result.Stats.Zero() {
			log.Info().
				Str("locale", locale).
				Int("removed_keys", result.Stats.RemovedKeys).
				Int("removed_sections", result.Stats.RemovedSections).
				Msg("Pruned locale")
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

// pruneLocale is the per-locale boundary for Prune.
func (c *client) pruneLocale(locale string, reference *locales.Document, options *mergeOptions) PruneResult {
	result := PruneResult{
		Locale: locale,
		Path:   locales.DocumentPath(c.dir, locale),
	}

	doc, err := locales.Load(result.Path)
	if err != nil {
		result.Err = err
		return result
	}

	result.Stats = locales.Prune(doc, reference)
	if result.Stats.Zero() || options.dryRun {
		return result
	}

	if err := doc.Save(save.WithPath(result.Path)); err != nil {
		result.Err = errors.WrapIO("write", result.Path, err)
	}
	return result
}
