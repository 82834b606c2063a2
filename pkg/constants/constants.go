// Package constants provides shared constants used throughout the localekit
// codebase. This includes timeouts, file permissions, and other configuration
// values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// TranslateRequestTimeout is the timeout for a single translation API request
	TranslateRequestTimeout = 2 * time.Minute

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Formatting constants for locale document serialization
const (
	// DocumentIndent is the indentation unit for saved locale documents.
	// Fixed so re-runs produce byte-identical output and minimal diffs.
	DocumentIndent = "  "

	// DocumentExtension is the file extension of locale documents
	DocumentExtension = ".json"
)

// Default locale configuration
const (
	// DefaultLocalesDir is the conventional directory for locale documents
	DefaultLocalesDir = "public/translations"

	// DefaultReferenceLocale is the locale other locales are validated against
	DefaultReferenceLocale = "en"
)
