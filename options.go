package localekit

// Option is a function that configures a Client instance.
type Option func(*client) error

// WithDir configures the directory holding the locale documents.
func WithDir(dir string) Option {
	return func(c *client) error {
		c.dir = dir
		return nil
	}
}

// MergeOption configures a single Merge or Prune run.
type MergeOption func(*mergeOptions)

// mergeOptions holds per-run settings.
type mergeOptions struct {
	dryRun  bool
	only    map[string]struct{}
}

// newMergeOptions applies MergeOptions to defaults.
func newMergeOptions(opts ...MergeOption) *mergeOptions {
	o := &mergeOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// include reports whether a locale should be processed under the options.
func (o *mergeOptions) include(locale string) bool {
	if len(o.only) == 0 {
		return true
	}
	_, ok := o.only[locale]
	return ok
}

// WithDryRun computes and reports changes without writing any document.
func WithDryRun(enabled bool) MergeOption {
	return func(o *mergeOptions) {
		o.dryRun = enabled
	}
}

// WithOnlyLocales restricts the run to the given locale IDs.
func WithOnlyLocales(ids ...string) MergeOption {
	return func(o *mergeOptions) {
		if o.only == nil {
			o.only = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.only[id] = struct{}{}
		}
	}
}
