package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Storage adapters return it when there is no data file yet.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate indicates an operation would leave two identity-equal
	// elements in a unique list.
	ErrDuplicate = errors.New("operation would result in duplicate elements")

	// ErrElementNotFound indicates the target element is not in a unique list.
	ErrElementNotFound = errors.New("element not found in list")

	// ErrIllegalValue indicates persisted data could not be converted into
	// valid domain objects.
	ErrIllegalValue = errors.New("illegal value")
)

// ValidationError reports a field value that violates its constraints.
// Error returns the user-facing constraint message.
type ValidationError struct {
	// Field is the name of the offending field, e.g. "Name".
	Field string

	// Message describes the constraint that was violated.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets callers match validation failures with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IllegalValueError reports corrupt persisted data.
// The whole load is rejected when one is returned.
type IllegalValueError struct {
	Message string
	Err     error
}

// NewIllegalValueError creates an IllegalValueError with a formatted message.
func NewIllegalValueError(format string, args ...any) *IllegalValueError {
	return &IllegalValueError{Message: fmt.Sprintf(format, args...)}
}

func (e *IllegalValueError) Error() string {
	return e.Message
}

// Unwrap matches ErrIllegalValue and the underlying cause, if any.
func (e *IllegalValueError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrIllegalValue, e.Err}
	}
	return []error{ErrIllegalValue}
}
