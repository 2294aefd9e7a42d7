package commands

import "fmt"

// CommandError reports a command that could not be carried out.
// Error returns the message shown to the user.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *CommandError) Unwrap() error {
	return e.Err
}

func newError(message string) *CommandError {
	return &CommandError{Message: message}
}

// Errorf creates a CommandError wrapping err with a formatted message.
func Errorf(err error, format string, args ...any) *CommandError {
	return &CommandError{Message: fmt.Sprintf(format, args...), Err: err}
}
