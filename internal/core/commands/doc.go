// Package commands implements the user actions of Findr.
//
// Each command is a value built by the parser and run once against a
// driving.Model. Execute either returns a CommandResult carrying the feedback
// shown to the user, or a *CommandError whose message is shown instead.
//
// Commands that take an index resolve it against the filtered candidate
// list, which is what the user sees, never against the full candidate book.
package commands
