package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Handlers map each kind to a response status; anything that is not one
// of these is an internal error.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingField       = errors.New("missing field")
	ErrInvalidReference   = errors.New("invalid reference")
)

// Error is a domain failure with a human readable message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

// Unwrap makes errors.Is match the kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...interface{}) *Error {
	return newError(ErrNotFound, format, args...)
}

func invalidInput(format string, args ...interface{}) *Error {
	return newError(ErrInvalidInput, format, args...)
}

// IsKnown reports whether err carries one of the domain kinds.
func IsKnown(err error) bool {
	for _, kind := range []error{
		ErrDuplicateEmail, ErrInvalidCredentials, ErrNotFound,
		ErrInvalidInput, ErrMissingField, ErrInvalidReference,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
