package app

import (
	"testing"
)

// TestUpdateFromFlags tests that flag values take precedence over loaded config.
func TestUpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:          "text",
		LocalesDir:      "public/translations",
		ReferenceLocale: "en",
	}

	config.UpdateFromFlags(true, false, true, "json", "debug", "i18n", "es")

	if !config.Verbose {
		t.Error("Verbose should be true")
	}
	if config.Quiet {
		t.Error("Quiet should be false")
	}
	if !config.NoColor {
		t.Error("NoColor should be true")
	}
	if config.Format != "json" {
		t.Errorf("Format = %q, want %q", config.Format, "json")
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", config.LogLevel, "debug")
	}
	if config.LocalesDir != "i18n" {
		t.Errorf("LocalesDir = %q, want %q", config.LocalesDir, "i18n")
	}
	if config.ReferenceLocale != "es" {
		t.Errorf("ReferenceLocale = %q, want %q", config.ReferenceLocale, "es")
	}
}

// TestUpdateFromFlagsEmptyValuesKeepDefaults tests that empty flag values
// do not clobber configured values.
func TestUpdateFromFlagsEmptyValuesKeepDefaults(t *testing.T) {
	config := &Config{
		Format:          "text",
		LocalesDir:      "public/translations",
		ReferenceLocale: "en",
		LogLevel:        "warn",
	}

	config.UpdateFromFlags(false, false, false, "", "", "", "")

	if config.Format != "text" {
		t.Errorf("Format = %q, want %q", config.Format, "text")
	}
	if config.LocalesDir != "public/translations" {
		t.Errorf("LocalesDir = %q, want %q", config.LocalesDir, "public/translations")
	}
	if config.ReferenceLocale != "en" {
		t.Errorf("ReferenceLocale = %q, want %q", config.ReferenceLocale, "en")
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", config.LogLevel, "warn")
	}
}

// TestGetEnvOrDefault tests environment variable fallback.
func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("LOCALEKIT_TEST_VAR", "set")

	if got := getEnvOrDefault("LOCALEKIT_TEST_VAR", "fallback"); got != "set" {
		t.Errorf("getEnvOrDefault() = %q, want %q", got, "set")
	}
	if got := getEnvOrDefault("LOCALEKIT_TEST_VAR_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnvOrDefault() = %q, want %q", got, "fallback")
	}
}
