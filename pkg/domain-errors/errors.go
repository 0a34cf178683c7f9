// Package domainerrors defines the closed set of error codes returned by services.
//
// Stores return sentinel errors (see pkg/platform/sentinel); services translate
// them into coded errors with New or Wrap, and the transport layer maps codes to
// status codes. Callers match on the code with HasCode rather than on types.
package domainerrors

import (
	"errors"
)

// Code identifies the kind of failure.
type Code string

const (
	// Request shape
	CodeBadRequest     Code = "bad_request"
	CodeValidation     Code = "validation_error"
	CodeInvalidRequest Code = "invalid_request"

	// Referenced entity absent
	CodeNotFound       Code = "not_found"
	CodeTripNotFound   Code = "trip_not_found"
	CodeClientNotFound Code = "client_not_found"

	// Trip state rules
	CodeTripNameMismatch   Code = "trip_name_mismatch"
	CodeTripAlreadyStarted Code = "trip_already_started"

	// Conflicting state rules
	CodeConflict               Code = "conflict"
	CodeDuplicateIdentity      Code = "duplicate_identity"
	CodeAlreadyRegistered      Code = "already_registered"
	CodeClientHasRegistrations Code = "client_has_registrations"

	// Infrastructure
	CodeRateLimited Code = "rate_limited"
	CodeCanceled    Code = "canceled"
	CodeTimeout     Code = "timeout"
	CodeInternal    Code = "internal_error"
)

// Error carries a code, a human readable message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds a coded error that keeps err reachable through errors.Is/As.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether the outermost coded error in err's chain has the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if !errors.As(err, &de) {
		return false
	}
	return de.Code == code
}

// Is is shorthand for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the outermost code in err's chain, or CodeInternal for plain errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
