package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		target *Error
		want   bool
	}{
		{"sentinel matches itself", ErrValidation, ErrValidation, true},
		{"withf copy matches sentinel", Withf(ErrInvalidTransition, "pending to delivered"), ErrInvalidTransition, true},
		{"wrap copy matches sentinel", Wrap(ErrPersistence, "insert failed", errors.New("conn reset")), ErrPersistence, true},
		{"persistence helper matches sentinel", Persistence(errors.New("timeout")), ErrPersistence, true},
		{"different codes do not match", Withf(ErrForbidden, "customers cannot accept"), ErrInvalidTransition, false},
		{"plain error does not match", errors.New("boom"), ErrNotFound, false},
		{"wrapped in fmt still matches", fmt.Errorf("service: %w", Withf(ErrReasonRequired, "rejection needs a reason")), ErrReasonRequired, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errors.Is(tc.err, tc.target); got != tc.want {
				t.Errorf("errors.Is(%v, %s) = %v, want %v", tc.err, tc.target.Code, got, tc.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("duplicate key")
	wrapped := Wrap(ErrValidation, "email already registered", cause)

	if wrapped.Error() != "email already registered: duplicate key" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("expected unwrap chain to reach the cause")
	}

	bare := Withf(ErrInsufficientBalance, "balance %d is below %d", 10, 50)
	if bare.Error() != "balance 10 is below 50" {
		t.Errorf("unexpected message: %q", bare.Error())
	}
}

func TestStatusCarriedThroughCopies(t *testing.T) {
	copies := []*Error{
		Withf(ErrAlreadyDecided, "request decided at noon"),
		Wrap(ErrAlreadyDecided, "decided", nil),
	}
	for _, c := range copies {
		if c.Status != ErrAlreadyDecided.Status {
			t.Errorf("status lost in copy: got %d, want %d", c.Status, ErrAlreadyDecided.Status)
		}
	}
}
