// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     errors
// Description: Coded errors with operation context and details
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package errors provides the structured error type used across the bookstore.
//
// An Error carries a Code for classification, a Severity that the logger maps to a
// level, the operation that failed and optional key/value details. Errors wrap a cause
// and cooperate with the standard library's errors.Is and errors.As.
//
//	err := errors.New("book not found").
//		WithCode(errors.CodeNotFound).
//		WithOperation("store.Catalog.Book").
//		WithDetail("book_id", 7)
package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Error is a structured error with code, severity and context
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
}

// New creates an Error with CodeUnknown and medium severity
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Newf creates an Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps err with a message. A nil err yields nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := New(message)
	wrapped.cause = err

	// Inherit classification from a wrapped Error
	var inner *Error
	if stderrors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
	}
	return wrapped
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity sets the severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation that failed
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a key/value detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	if e.operation != "" {
		b.WriteString(e.operation)
		b.WriteString(": ")
	}
	b.WriteString(e.message)
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.details[k])
		}
		b.WriteString(")")
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped cause
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error by code, so sentinel-style checks work:
//
//	errors.Is(err, errors.New("").WithCode(errors.CodeNotFound))
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.code != CodeUnknown && t.code == e.code
}

// Message returns the message without operation, details or cause
func (e *Error) Message() string { return e.message }

// Code returns the error code
func (e *Error) Code() Code { return e.code }

// Severity returns the severity
func (e *Error) Severity() Severity { return e.severity }

// Operation returns the failed operation
func (e *Error) Operation() string { return e.operation }

// Details returns a copy of the attached details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// HasCode reports whether err carries the given code
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// NotFound builds a CodeNotFound error for a missing resource
func NotFound(operation, resource string, id interface{}) *Error {
	return New(resource+" not found").
		WithCode(CodeNotFound).
		WithSeverity(SeverityLow).
		WithOperation(operation).
		WithDetail("id", id)
}

// InvalidInput builds a CodeInvalidInput error
func InvalidInput(operation, message string) *Error {
	return New(message).
		WithCode(CodeInvalidInput).
		WithSeverity(SeverityLow).
		WithOperation(operation)
}

// Is and As re-export the standard helpers so callers need a single import
var (
	Is = stderrors.Is
	As = stderrors.As
)
