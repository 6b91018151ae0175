// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidAmount indicates the amount token is not a plain decimal number
	TypeInvalidAmount Type = "INVALID_AMOUNT"

	// TypeUnknownUnit indicates the unit token matches no recognized byte unit
	TypeUnknownUnit Type = "UNKNOWN_UNIT"

	// TypeUnknownPeriod indicates the period token matches no recognized period
	TypeUnknownPeriod Type = "UNKNOWN_PERIOD"

	// TypeMissingArgument indicates fewer tokens than required were supplied
	TypeMissingArgument Type = "MISSING_ARGUMENT"

	// TypeSyntax indicates unexpected or trailing characters in the input
	TypeSyntax Type = "SYNTAX_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// InvalidAmount creates an invalid amount error
func InvalidAmount(token string) *Error {
	return Newf(TypeInvalidAmount, "%q is not a valid number", token)
}

// UnknownUnit creates an unknown unit error
func UnknownUnit(token, accepted string) *Error {
	return Newf(TypeUnknownUnit, "%q is not a recognized unit (%s)", token, accepted)
}

// UnknownPeriod creates an unknown period error
func UnknownPeriod(token, accepted string) *Error {
	return Newf(TypeUnknownPeriod, "%q is not a recognized time period (%s)", token, accepted)
}

// MissingArgument creates a missing argument error
func MissingArgument(what string) *Error {
	return Newf(TypeMissingArgument, "missing %s", what)
}

// Syntax creates a syntax error for unexpected input characters
func Syntax(expected, actual byte) *Error {
	if actual == 0 {
		return Newf(TypeSyntax, "expected %q, found end of input", expected)
	}
	return Newf(TypeSyntax, "expected %q, found %q", expected, actual)
}
