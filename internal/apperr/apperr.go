// Package apperr defines the error taxonomy returned by services.
// Handlers translate these into the HTTP response envelope; anything
// that is not an *apperr.Error maps to a generic 500.
package apperr

import (
	"errors"
	"net/http"
)

// Error is a request-terminal failure with an HTTP status.
type Error struct {
	Status  int
	Message string
	Errs    []string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Validation reports missing or malformed input (400).
func Validation(message string, errs ...string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Errs: errs}
}

// Auth reports missing/invalid/expired credentials or tokens (401).
func Auth(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden reports a non-owner mutation attempt (403).
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound reports a missing resource (404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict reports a duplicate unique field (409).
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Internal reports a downstream store failure (500). The message is
// generic; internals are never leaked to clients.
func Internal(message string) *Error {
	if message == "" {
		message = "Something went wrong"
	}
	return New(http.StatusInternalServerError, message)
}

// From extracts an *Error, or wraps an unknown error as a generic 500.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("")
}
