// Package apperr carries the client-facing error taxonomy shared by services
// and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

// Kind sentinels. Match with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUpstream     = errors.New("upstream error")
)

// Error is an expected failure with a message that is safe to return to clients.
type Error struct {
	Kind  error
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Is lets errors.Is match both the kind and the wrapped cause.
func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Cause }

func New(kind error, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Validation(msg string) *Error   { return New(ErrValidation, msg) }
func Unauthorized(msg string) *Error { return New(ErrUnauthorized, msg) }
func Forbidden(msg string) *Error    { return New(ErrForbidden, msg) }
func NotFound(msg string) *Error     { return New(ErrNotFound, msg) }
func Conflict(msg string) *Error     { return New(ErrConflict, msg) }

// Upstream wraps a failure reported by an external provider. The message is
// passed through to the client.
func Upstream(msg string, cause error) *Error {
	return &Error{Kind: ErrUpstream, Msg: msg, Cause: cause}
}

// Message returns the client-safe message of err, or "" when err is not an *Error.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	return ""
}
