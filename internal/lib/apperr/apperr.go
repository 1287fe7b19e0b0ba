// Package apperr defines the typed failures raised by the catalog service.
// Each carries the HTTP status it translates to and a cause with a stack trace.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return pkgerrors.Cause(e.cause)
}

// StackTrace renders the cause with the stack captured where the error was raised.
func (e *Error) StackTrace() string {
	return fmt.Sprintf("%+v", e.cause)
}

func newError(status int, message string, cause error) *Error {
	if cause == nil {
		cause = pkgerrors.New(message)
	} else {
		cause = pkgerrors.WithStack(cause)
	}
	return &Error{Status: status, Message: message, cause: cause}
}

func Validation(message string) *Error {
	return newError(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *Error {
	return newError(http.StatusNotFound, message, nil)
}

// Internal wraps an unexpected failure. The message shown to callers is the
// cause's message, like the default bucket of the error handler.
func Internal(cause error) *Error {
	return newError(http.StatusInternalServerError, cause.Error(), cause)
}

// From returns err as an *Error, classifying anything untyped as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Title returns the human readable title for an HTTP status.
func Title(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Validation Failed"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusInternalServerError:
		return "Server Error"
	default:
		return ""
	}
}
