// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the tool surface can report.
type ErrorKind string

const (
	// KindInvalidArguments means the caller-supplied payload has the wrong shape.
	KindInvalidArguments ErrorKind = "InvalidArguments"
	// KindUnknownOperation means the requested tool name is not recognized.
	KindUnknownOperation ErrorKind = "UnknownOperation"
	// KindUnknownCategory means a category id is not present in the snapshot.
	KindUnknownCategory ErrorKind = "UnknownCategory"
	// KindUnknownAccount means an account id is not present in the snapshot.
	KindUnknownAccount ErrorKind = "UnknownAccount"
	// KindUnknownPayee means a payee id is not present in the snapshot.
	KindUnknownPayee ErrorKind = "UnknownPayee"
	// KindInvalidDateRange means a date range starts after it ends.
	KindInvalidDateRange ErrorKind = "InvalidDateRange"
	// KindDataFetch means the budget data source failed; the cause is wrapped, not interpreted.
	KindDataFetch ErrorKind = "DataFetchError"
)

// Error is the single error type crossing layer boundaries. Lower layers
// construct it with the kind that describes the failure; the dispatch layer
// renders it without remapping.
type Error struct {
	Err     error
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error of the given kind.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error of the given kind around an underlying cause.
func WrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// InvalidArgument reports a malformed payload, naming the offending field.
func InvalidArgument(field, reason string) *Error {
	return NewError(KindInvalidArguments, "argument %q: %s", field, reason)
}

// KindOf extracts the kind from an error chain. Errors that did not
// originate in this application report KindDataFetch only when wrapped;
// anything else is reported as an empty kind.
func KindOf(err error) ErrorKind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
