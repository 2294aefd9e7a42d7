package parser

import (
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/commands"
)

// ParseError reports input that does not form a valid command.
// Error returns the message shown to the user.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// invalidFormat reports a usage error for the command described by usage.
func invalidFormat(usage string, cause error) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(commands.MessageInvalidCommandFormat, usage),
		Err:     cause,
	}
}

// fromValidation surfaces a field constraint message as a parse error.
func fromValidation(err error) *ParseError {
	return &ParseError{Message: err.Error(), Err: err}
}
