// Package apperr defines the application error taxonomy. Services return
// these; the Fiber error middleware maps them to HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match any error of the same code, so sentinels below can
// be compared against wrapped instances.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap returns a copy of the sentinel carrying a more specific message and
// the underlying cause.
func Wrap(sentinel *Error, message string, err error) *Error {
	return &Error{Code: sentinel.Code, Status: sentinel.Status, Message: message, Err: err}
}

// Withf returns a copy of the sentinel with a formatted message.
func Withf(sentinel *Error, format string, args ...interface{}) *Error {
	return &Error{Code: sentinel.Code, Status: sentinel.Status, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrValidation          = New("VALIDATION_ERROR", http.StatusBadRequest, "invalid input")
	ErrForbidden           = New("FORBIDDEN", http.StatusForbidden, "actor not permitted for this action")
	ErrInvalidTransition   = New("INVALID_TRANSITION", http.StatusConflict, "status transition not allowed")
	ErrAlreadyDecided      = New("ALREADY_DECIDED", http.StatusConflict, "request has already been decided")
	ErrReasonRequired      = New("REASON_REQUIRED", http.StatusBadRequest, "a reason is required for this action")
	ErrInsufficientBalance = New("INSUFFICIENT_BALANCE", http.StatusBadRequest, "points balance too low")
	ErrInvalidAmount       = New("INVALID_AMOUNT", http.StatusBadRequest, "amount must be a positive integer")
	ErrNotTerminal         = New("NOT_TERMINAL", http.StatusConflict, "order is not in a terminal status")
	ErrNotFound            = New("NOT_FOUND", http.StatusNotFound, "record not found")
	ErrUnauthorized        = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrPersistence         = New("PERSISTENCE_ERROR", http.StatusInternalServerError, "storage failure")
)

// Persistence wraps a store-layer failure. Transient; callers may retry pure
// reads, never ledger-mutating writes without an idempotency key.
func Persistence(err error) *Error {
	return Wrap(ErrPersistence, "storage failure", err)
}
