package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/localekit"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	LocalekitFunc            func() (localekit.Client, error)
	LocalekitWithOptionsFunc func(...localekit.Option) (localekit.Client, error)
	LoggerFunc               func() *zerolog.Logger
	OutputFormatFunc         func() string
	LocalesDirFunc           func() string
	ReferenceLocaleFunc      func() string
	VersionFunc              func() string
	CommitFunc               func() string
	DateFunc                 func() string
	BuiltByFunc              func() string
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

// Localekit returns a client using the mock function or nil.
func (m *Mock) Localekit() (localekit.Client, error) {
	if m.LocalekitFunc != nil {
		return m.LocalekitFunc()
	}
	return nil, nil
}

// LocalekitWithOptions returns a client using the mock function or nil.
func (m *Mock) LocalekitWithOptions(opts ...localekit.Option) (localekit.Client, error) {
	if m.LocalekitWithOptionsFunc != nil {
		return m.LocalekitWithOptionsFunc(opts...)
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the output format using the mock function or "text".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "text"
}

// LocalesDir returns the locale directory using the mock function or "".
func (m *Mock) LocalesDir() string {
	if m.LocalesDirFunc != nil {
		return m.LocalesDirFunc()
	}
	return ""
}

// ReferenceLocale returns the reference locale using the mock function or "en".
func (m *Mock) ReferenceLocale() string {
	if m.ReferenceLocaleFunc != nil {
		return m.ReferenceLocaleFunc()
	}
	return "en"
}

// Version returns the version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns the commit using the mock function or "none".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "none"
}

// Date returns the date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the builder using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}
