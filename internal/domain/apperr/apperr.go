// Package apperr is the error taxonomy shared by every usecase. Handlers map
// a Kind to an HTTP status; the wrapped cause never leaves the process.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation           Kind = "validation_error"
	KindNotFound             Kind = "not_found"
	KindForbidden            Kind = "forbidden"
	KindInvalidTransition    Kind = "invalid_transition"
	KindExclusivityViolation Kind = "exclusivity_violation"
	KindInvalidCredentials   Kind = "invalid_credentials"
	KindConflict             Kind = "conflict"
	KindStore                Kind = "store_error"
)

type Error struct {
	Kind    Kind
	Message string
	// Set only for KindExclusivityViolation.
	ConflictingRequestID uint64
	Err                  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so sentinels declared with New work
// with errors.Is even after being rewrapped with a different message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Validation(msg string) *Error { return New(KindValidation, msg) }

func NotFound(msg string) *Error { return New(KindNotFound, msg) }

// Store wraps a persistence failure. The message is fixed so driver text
// cannot leak through the HTTP layer.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: "storage failure", Err: err}
}

func Exclusivity(conflictingID uint64) *Error {
	return &Error{
		Kind:                 KindExclusivityViolation,
		Message:              fmt.Sprintf("borrower already has approved request %d", conflictingID),
		ConflictingRequestID: conflictingID,
	}
}

// KindOf reports the Kind of err, defaulting to KindStore for foreign errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStore
}

// Wrap passes *Error values through and turns anything else into a store error.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return Store(err)
}
