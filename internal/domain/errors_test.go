package domain

import (
	"errors"
	"testing"
)

func TestValidationError_Is(t *testing.T) {
	t.Parallel()

	err := error(&ValidationError{Fields: map[string]string{"id": MsgMustBePos}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("errors.Is(%v, ErrValidation) = false, want true", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As() = false, want true")
	}
	if verr.Fields["id"] != MsgMustBePos {
		t.Errorf("Fields[id] = %q, want %q", verr.Fields["id"], MsgMustBePos)
	}
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"per_page": "too large",
		"page":     MsgMustBePos,
	}}

	want := "validation error: page: must be a positive integer; per_page: too large"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_NoFields(t *testing.T) {
	t.Parallel()

	if got := (&ValidationError{}).Error(); got != "validation error" {
		t.Errorf("Error() = %q, want %q", got, "validation error")
	}
}
