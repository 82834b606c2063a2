// Package app provides the application context and dependency management
// for the localekit CLI. It follows idiomatic Go patterns for CLI
// applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/localekit"
	"github.com/agentstation/localekit/internal/appcontext"
	"github.com/agentstation/localekit/pkg/errors"
)

// App represents the localekit application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// localekit client, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Localekit client (lazy-initialized, singleton)
	mu  sync.RWMutex
	kit localekit.Client
}

// Ensure App implements the command application context at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "loading configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// LocalesDir returns the configured locale document directory.
func (a *App) LocalesDir() string {
	return a.config.LocalesDir
}

// ReferenceLocale returns the configured reference locale.
func (a *App) ReferenceLocale() string {
	return a.config.ReferenceLocale
}

// Localekit returns the client for the configured locale directory,
// creating it lazily if needed. This is thread-safe and ensures only one
// instance is created.
func (a *App) Localekit() (localekit.Client, error) {
	a.mu.RLock()
	if a.kit != nil {
		kit := a.kit
		a.mu.RUnlock()
		return kit, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.kit != nil {
		return a.kit, nil
	}

	kit, err := localekit.New(localekit.WithDir(a.config.LocalesDir))
	if err != nil {
		return nil, err
	}

	a.kit = kit
	return kit, nil
}

// LocalekitWithOptions returns a new client with custom options. This is
// useful for commands that need configurations different from the default
// app instance (e.g. an explicit --dir).
func (a *App) LocalekitWithOptions(opts ...localekit.Option) (localekit.Client, error) {
	return localekit.New(opts...)
}
