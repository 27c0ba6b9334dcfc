package pkg

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Every Error derived from a sentinel created with [NewError] (via
// [Error.Wrap], [Error.Wrapf], or [Error.With]) matches that sentinel with
// [errors.Is].
type Error struct {
	root  *Error
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new sentinel Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.root = e

	return e
}

// WrapError wraps a standard error into an Error.
// If err already contains an Error, that Error is returned unchanged.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg> (<attrs>): <err>"
	//   2. "<msg> (<attrs>)"        // wrapped error is nil
	//   3. "<msg>"                  // no attributes
	//   4. "<err>"                  // base error message is empty
	part := make([]string, 0, 2)

	if e.msg != "" {
		head := e.msg
		if len(e.attrs) > 0 {
			head += " (" + formatAttrs(e.attrs) + ")"
		}

		part = append(part, head)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil || e.root == nil {
		return false
	}

	return e.root == t.root
}

// Attrs returns a copy of the attributes attached to e.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		root:  e.root,
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// Wrapf creates a new Error wrapping a formatted error.
func (e *Error) Wrapf(format string, args ...any) *Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		root:  e.root,
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

func formatAttrs(attrs []slog.Attr) string {
	part := make([]string, 0, len(attrs))
	for _, a := range attrs {
		part = append(part, a.Key+"="+a.Value.String())
	}

	return strings.Join(part, " ")
}
