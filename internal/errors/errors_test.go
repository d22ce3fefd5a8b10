package errors

import (
	"fmt"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	base := SchemaError("missing column")
	wrapped := Wrap(base, "reading worksheet")

	if got := GetCode(wrapped); got != CodeSchemaError {
		t.Errorf("GetCode = %q, want %q", got, CodeSchemaError)
	}
	if !HasCode(wrapped, CodeSchemaError) {
		t.Error("HasCode(CodeSchemaError) = false")
	}
	want := "reading worksheet: missing column"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrapf(fmt.Errorf("disk full"), "saving %s", "report.xlsx")
	if got := GetCode(wrapped); got != CodeInternalError {
		t.Errorf("GetCode = %q, want %q", got, CodeInternalError)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) must return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) must return nil")
	}
}

func TestExternalServiceError(t *testing.T) {
	err := ExternalServiceError("embedding", fmt.Errorf("http 503"))
	if GetCode(err) != CodeExternalService {
		t.Errorf("GetCode = %q", GetCode(err))
	}
	if err.Unwrap() == nil {
		t.Error("cause must be unwrappable")
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if got := GetCode(fmt.Errorf("plain")); got != "UNKNOWN" {
		t.Errorf("GetCode(plain error) = %q, want UNKNOWN", got)
	}
}
