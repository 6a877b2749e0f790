// Package errors provides error handling for cligen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints
//   - Assertion failures for broken construction invariants
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := load(path); err != nil {
//	    return errors.Wrap(err, "failed to load descriptor")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "declare the positional as required")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf   = crdb.AssertionFailedf
	IsAssertionFailure = crdb.IsAssertionFailure
)

// Sentinel errors for use across cligen.
// Use these with errors.Is() for type-safe error checking.
var (
	// ErrInvariantViolation marks a caller bug inside the tree builders
	// (for example a chain link whose callee is not a bare identifier).
	ErrInvariantViolation = New("invariant violation")

	// ErrInvalidInput indicates a malformed transform result or descriptor
	ErrInvalidInput = New("invalid input")

	// ErrUnsupported indicates a signature feature the generator cannot render
	ErrUnsupported = New("unsupported")

	// ErrNotFound indicates a file or module that could not be located
	ErrNotFound = New("not found")
)

// InvariantViolationf creates an assertion failure marked as ErrInvariantViolation.
func InvariantViolationf(format string, args ...interface{}) error {
	return Mark(AssertionFailedf(format, args...), ErrInvariantViolation)
}

// NewInvalidInputError creates an invalid-input error with a formatted message
func NewInvalidInputError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidInput, Newf(format, args...).Error())
}

// NewUnsupportedError creates an unsupported-feature error with a formatted message
func NewUnsupportedError(format string, args ...interface{}) error {
	return Wrap(ErrUnsupported, Newf(format, args...).Error())
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// IsInvariantViolation checks if an error is or wraps ErrInvariantViolation
func IsInvariantViolation(err error) bool {
	return err != nil && Is(err, ErrInvariantViolation)
}

// IsInvalidInputError checks if an error is or wraps ErrInvalidInput
func IsInvalidInputError(err error) bool {
	return err != nil && Is(err, ErrInvalidInput)
}

// IsUnsupportedError checks if an error is or wraps ErrUnsupported
func IsUnsupportedError(err error) bool {
	return err != nil && Is(err, ErrUnsupported)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}
