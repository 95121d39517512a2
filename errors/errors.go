// Package errors wraps pkg/errors and adds error codes for the failure
// taxonomy shared by the coffer collection packages.
package errors

import (
	"github.com/pkg/errors"
)

// Code is an error code which can be used to check against a given error.
// For example, see the Is() method.
type Code string

// Codes shared across the collection packages. Individual packages attach
// these when constructing errors; callers match with Is(err, code).
const (
	ErrUncoded Code = "Uncoded"

	// IndexOutOfRange: sequence access outside [0, size).
	IndexOutOfRange Code = "IndexOutOfRange"

	// EmptyStructure: removal or peek on a zero-length structure.
	EmptyStructure Code = "EmptyStructure"

	// KeyNotFound: a value-or-fail lookup found no entry. Plain lookups
	// report absence with a bool instead.
	KeyNotFound Code = "KeyNotFound"

	// DomainMismatch: a bit-vector operation across different universes.
	DomainMismatch Code = "DomainMismatch"

	// InvalidConfiguration: a construction-time knob violated its
	// constraints (load factor, thresholds, capacities).
	InvalidConfiguration Code = "InvalidConfiguration"
)

func New(code Code, message string) error {
	return errors.WithStack(codedError{
		Code:    code,
		Message: message,
	})
}

// Newf is New with Sprintf-style formatting of the message.
func Newf(code Code, format string, args ...interface{}) error {
	return errors.WithStack(codedError{
		Code:    code,
		Message: errors.Errorf(format, args...).Error(),
	})
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Cause(err error) error {
	return errors.Cause(err)
}

func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Is is a fork of the Is() method from `pkg/errors` which takes as its
// target an error Code instead of an error.
func Is(err error, target Code) bool {
	match := codedError{
		Code: target,
	}
	return errors.Is(err, match)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func WithMessage(err error, message string) error {
	return errors.WithMessage(err, message)
}

func WithMessagef(err error, format string, args ...interface{}) error {
	return errors.WithMessagef(err, format, args...)
}

func WithStack(err error) error {
	return errors.WithStack(err)
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Wrapf(err error, fmt string, args ...interface{}) error {
	return errors.Wrapf(err, fmt, args...)
}

// codedError is the fundamental type used by this package to provide coded
// errors.
type codedError struct {
	Code    Code
	Message string
}

func (ce codedError) Error() string {
	return ce.Message
}

func (ce codedError) Is(err error) bool {
	if e, ok := err.(codedError); ok && ce.Code == e.Code {
		return true
	}
	return false
}
