// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/localekit"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/localekit/app automatically implements this
// interface, providing dependency injection for commands while maintaining
// testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Localekit returns the default client for the configured locale
	// directory, creating it lazily if needed.
	Localekit() (localekit.Client, error)

	// LocalekitWithOptions creates a new client with custom options.
	// Use this when a command needs specific configuration (e.g. --dir).
	LocalekitWithOptions(...localekit.Option) (localekit.Client, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (text, json, yaml).
	OutputFormat() string

	// LocalesDir returns the configured locale document directory.
	LocalesDir() string

	// ReferenceLocale returns the locale other locales are checked against.
	ReferenceLocale() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
