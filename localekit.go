// Package localekit provides the main entry point for the localekit
// translation maintenance system. It offers a high-level interface for
// working with a directory of per-locale translation documents: merging
// patches of translated strings, validating cross-locale consistency, and
// pruning stale keys.
//
// Every operation treats the locale documents on disk as the source of
// truth: documents are loaded fully into memory, transformed, and written
// back atomically, so a failed run never leaves a half-written file behind.
// A failure while processing one locale never prevents the remaining
// locales from being processed.
//
// Example usage:
//
//	kit, err := localekit.New(localekit.WithDir("public/translations"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	patches, err := locales.LoadPatchSet("patches/vin-scanner.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := kit.Merge(ctx, patches)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, result := range report.Results {
//	    fmt.Printf("%s: +%d ~%d\n", result.Locale, result.Stats.Added, result.Stats.Updated)
//	}
package localekit

import (
	"context"

	"github.com/agentstation/localekit/pkg/constants"
	"github.com/agentstation/localekit/pkg/errors"
	"github.com/agentstation/localekit/pkg/locales"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages a directory of locale documents.
type Client interface {
	// Dir returns the locale document directory.
	Dir() string

	// Locales lists the locale IDs with a document in the directory.
	Locales() ([]string, error)

	// Document loads a single locale's document.
	Document(locale string) (*locales.Document, error)

	// Merge applies a patch set across its locales. See Report for the
	// per-locale outcome; the returned error covers setup failures only.
	Merge(ctx context.Context, patches *locales.PatchSet, opts ...MergeOption) (*Report, error)

	// Validate compares every locale against the reference locale.
	Validate(ctx context.Context, reference string) (*ValidationReport, error)

	// Prune removes keys absent from the reference locale's document.
	Prune(ctx context.Context, reference string, opts ...MergeOption) (*PruneReport, error)
}

// client is the internal implementation of the Client interface.
type client struct {
	dir string
}

// New creates a new Client with the given options.
func New(opts ...Option) (Client, error) {
	c := &client{
		dir: constants.DefaultLocalesDir,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.dir == "" {
		return nil, &errors.ConfigError{
			Component: "localekit",
			Message:   "locale directory must not be empty",
		}
	}
	return c, nil
}

// Dir returns the locale document directory.
func (c *client) Dir() string {
	return c.dir
}

// Locales lists the locale IDs with a document in the directory.
func (c *client) Locales() ([]string, error) {
	return locales.Discover(c.dir)
}

// Document loads a single locale's document.
func (c *client) Document(locale string) (*locales.Document, error) {
	return locales.Load(locales.DocumentPath(c.dir, locale))
}
