package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so handlers can pick the HTTP status
// without inspecting message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstream
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, never shown to clients for upstream errors
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the client-facing detail.
func (e *Error) Message() string {
	return e.Msg
}

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Auth(format string, args ...any) error {
	return &Error{Kind: KindAuth, Msg: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) error {
	return &Error{Kind: KindForbidden, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// Upstream wraps a persistence/transport failure. msg is the generic
// client-facing text, cause stays internal.
func Upstream(msg string, cause error) error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: cause}
}

// KindOf extracts the kind from anywhere in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the client-facing detail, or a generic fallback.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal server error"
}
