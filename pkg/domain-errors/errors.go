// Package domainerrors defines the coded errors raised by domain services.
//
// Services translate store sentinels and rule violations into these values;
// the HTTP layer maps codes to status lines and response bodies. Handlers
// must never branch on error strings, only on codes.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for transport mapping.
type Code string

const (
	// CodeBadRequest marks input that could not be parsed or is missing
	// required request-level data.
	CodeBadRequest Code = "bad_request"
	// CodeValidation marks input that failed field-level constraints. The
	// error carries one message per offending field.
	CodeValidation Code = "validation_failed"
	// CodeNotFound marks a reference to a record that does not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict marks an attempt to create a record whose key is taken.
	CodeConflict Code = "conflict"
	// CodeInternal marks an unexpected infrastructure failure.
	CodeInternal Code = "internal_error"
)

// Error is a domain error with a classification code. Fields is populated
// only for CodeValidation errors.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New constructs a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable through errors.Is/errors.As for logging, but the transport layer
// only ever exposes Message.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// NewValidation constructs a CodeValidation error carrying per-field
// messages. The map is used verbatim in the 422 response body.
func NewValidation(fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: "validation failed", Fields: fields}
}

// HasCode reports whether err is (or wraps) a domain error with the code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// FieldsOf extracts the per-field messages from a validation error, or nil.
func FieldsOf(err error) map[string]string {
	var de *Error
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}
