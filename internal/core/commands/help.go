package commands

import "github.com/allanrobert0203/tp/internal/core/ports/driving"

// Feedback for the window commands.
const (
	MessageShowingHelp = "Opened help window."
	MessageExiting     = "Exiting Findr as requested ..."
)

// HelpCommand asks the UI to show usage instructions.
type HelpCommand struct{}

// Execute never fails.
func (HelpCommand) Execute(driving.Model) (driving.CommandResult, error) {
	return driving.CommandResult{Feedback: MessageShowingHelp, ShowHelp: true}, nil
}

// ExitCommand asks the UI to shut down.
type ExitCommand struct{}

// Execute never fails.
func (ExitCommand) Execute(driving.Model) (driving.CommandResult, error) {
	return driving.CommandResult{Feedback: MessageExiting, Exit: true}, nil
}
