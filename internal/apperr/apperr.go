// Package apperr defines the error taxonomy returned by the mutation
// pipelines. Every error crossing the service boundary is one of these
// kinds; handlers map them to HTTP statuses and the wire error shape.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a pipeline error.
type Kind int

const (
	// KindValidation covers field-level schema violations.
	KindValidation Kind = iota
	// KindConflict covers uniqueness-invariant violations.
	KindConflict
	// KindNotFound covers missing target records.
	KindNotFound
	// KindAuthentication covers credential mismatches; messages are
	// deliberately generic and never reveal whether an email exists.
	KindAuthentication
	// KindForbidden covers refused owner-protected operations.
	KindForbidden
	// KindInternal covers storage and unexpected failures. The cause is
	// logged server-side; only the generic message is surfaced.
	KindInternal
)

// MsgInternal is the only message surfaced for internal failures.
const MsgInternal = "An internal error occurred. Please try again."

// Error is a classified pipeline error.
type Error struct {
	Kind    Kind
	Message string
	// Fields maps field names to their accumulated violation messages.
	// Only set for validation errors.
	Fields map[string][]string

	cause error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// Status returns the HTTP status the error maps to.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a field-level validation error.
func Validation(message string, fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Conflict builds a uniqueness-violation error. It carries no field
// attribution so the UI can render it as a banner rather than inline.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NotFound builds a missing-record error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Authentication builds a credential-failure error.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Forbidden builds a refused-operation error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Internal wraps an unexpected failure. The cause stays attached for
// server-side logging; callers only ever see MsgInternal.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, cause: cause}
}

// From classifies err. Already-classified errors pass through unchanged;
// anything else becomes an internal error.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
