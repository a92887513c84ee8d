package common

import (
	"errors"
	"testing"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator()
	v.Field("brand", "", Required)
	v.Field("diameter_mm", -1.0, Positive)
	v.Field("status", "vaporized", OneOf("in_stock", "used_up"))

	if !v.HasErrors() {
		t.Fatalf("expected errors")
	}
	err := v.Error()
	if err == nil {
		t.Fatalf("Error() = nil with failed rules")
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error does not wrap ErrValidation: %v", err)
	}
}

func TestValidatorPasses(t *testing.T) {
	v := NewValidator()
	v.Field("brand", "Sunlu", Required)
	v.Field("diameter_mm", 1.75, Positive)
	v.Field("id", "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", UUID)

	if v.HasErrors() {
		t.Fatalf("unexpected errors: %s", v.ErrorMessage())
	}
	if err := v.Error(); err != nil {
		t.Fatalf("Error() = %v, want nil", err)
	}
}

func TestAppErrorUnwraps(t *testing.T) {
	cause := ErrNotFound
	err := NewAppError("PRODUCT_MISSING", "product is gone", cause)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("AppError does not unwrap to its cause")
	}
	if err.Error() == "" {
		t.Fatalf("empty error string")
	}
}
