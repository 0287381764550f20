package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries an HTTP status code alongside the message so the HTTP layer
// can map failures without inspecting error strings.
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Cause   error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithCause returns a copy of the error annotated with the underlying cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Cause: cause}
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// InvalidArg reports a request parameter that failed format validation.
func InvalidArg(arg string) *Error {
	return New(http.StatusBadRequest, fmt.Sprintf("invalid argument: %s", arg))
}

// NotFound reports a missing stored analysis or bucket. A missing document is
// always reported, never defaulted to empty.
func NotFound(what string) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("not found: %s", what))
}

// InvalidChatExport reports a top-level structural problem with an export
// document. It aborts the whole aggregation call.
func InvalidChatExport(cause error) *Error {
	return New(http.StatusBadRequest, "invalid chat export").WithCause(cause)
}

// InvalidTimestamp reports a message date that cannot be parsed into a
// calendar date. It is per-message and never aborts the pass.
func InvalidTimestamp(value string) *Error {
	return New(http.StatusBadRequest, fmt.Sprintf("invalid timestamp: %q", value))
}

// IsNotFound reports whether err is (or wraps) a 404-class *Error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == http.StatusNotFound
}
