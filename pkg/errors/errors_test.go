package errors

import (
	"io/fs"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("locale", "xx")
	if err.Error() != "locale xx not found" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !Is(err, ErrNotFound) {
		t.Error("should match ErrNotFound")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should be true")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("locale", "not a locale", "not a valid BCP 47 language tag")
	if !Is(err, ErrInvalidInput) {
		t.Error("should match ErrInvalidInput")
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError should be true")
	}

	var ve *ValidationError
	if !As(err, &ve) {
		t.Fatal("should unwrap as ValidationError")
	}
	if ve.Field != "locale" {
		t.Errorf("Field = %q, want %q", ve.Field, "locale")
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := New("unexpected end of JSON input")
	err := NewParseError("json", "es.json", inner.Error(), inner)
	if !Is(err, inner) {
		t.Error("should unwrap to inner error")
	}
	want := "parse error in json file es.json: unexpected end of JSON input"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIOErrorWrapsNotExist(t *testing.T) {
	err := WrapIO("read", "public/translations/xx.json", fs.ErrNotExist)
	if !Is(err, fs.ErrNotExist) {
		t.Error("should unwrap to fs.ErrNotExist")
	}

	var ioErr *IOError
	if !As(err, &ioErr) {
		t.Fatal("should unwrap as IOError")
	}
	if ioErr.Operation != "read" {
		t.Errorf("Operation = %q, want %q", ioErr.Operation, "read")
	}
}

func TestSchemaError(t *testing.T) {
	err := NewSchemaError("es.json", "hub", "count", "value must be a string")
	if !IsValidationError(err) {
		t.Error("schema errors should count as validation errors")
	}
	want := `schema error in es.json: section "hub" key "count": value must be a string`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMergeErrorUnwrap(t *testing.T) {
	inner := WrapIO("read", "es.json", fs.ErrNotExist)
	err := NewMergeError("es", "es.json", inner)
	if !Is(err, fs.ErrNotExist) {
		t.Error("should unwrap through to fs.ErrNotExist")
	}
}

func TestWrapHelpersPassNil(t *testing.T) {
	if WrapIO("read", "x", nil) != nil {
		t.Error("WrapIO(nil) should be nil")
	}
	if WrapParse("json", "x", nil) != nil {
		t.Error("WrapParse(nil) should be nil")
	}
	if WrapValidation("field", nil) != nil {
		t.Error("WrapValidation(nil) should be nil")
	}
}
