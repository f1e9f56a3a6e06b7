package pkg

// Sentinel errors for the goinstr module and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrReadInput is returned when reading a dumped log fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrParseLine is returned when a dumped log line does not match the
// timeline grammar.
//
// This error should be wrapped with the offending line number and text.
var ErrParseLine = MakeErrorf("malformed log line")

// ErrUnmatchedEnd is returned when an END event arrives for an activity
// that has no open BEGIN on the same thread.
var ErrUnmatchedEnd = MakeErrorf("END without matching BEGIN")

// ErrNoEvents is returned when the parsed input contains no timed events
// to render.
var ErrNoEvents = MakeErrorf("no timed events in input")

// ErrStyle is returned when the YAML style configuration cannot be read
// or decoded.
//
// This error should be wrapped with the underlying decode error.
var ErrStyle = MakeErrorf("invalid style configuration")

// ErrFilter is returned when a --filter expression fails to compile or
// does not evaluate to a boolean.
//
// This error should be wrapped with the expression source and the
// underlying compile or evaluation error.
var ErrFilter = MakeErrorf("invalid filter expression")

// ErrUnknownActivity is returned when an --only or --silence selector
// matches no parsed activity name, even fuzzily.
var ErrUnknownActivity = MakeErrorf("selector matches no activity")

// ErrChartWidth is returned when a renderer is given a chart width below
// one cell.
//
// This error should be wrapped with the offending width.
var ErrChartWidth = MakeErrorf("chart width must be positive")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether the receiver's chain contains every error of a
// sentinel chain, so wrapped sentinels match under errors.Is.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 {
		return false
	}

	for _, want := range t {
		if !slices.Contains(e, want) {
			return false
		}
	}

	return true
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
