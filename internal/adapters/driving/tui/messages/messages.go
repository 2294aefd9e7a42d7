// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// CommandExecuted carries the outcome of a typed command.
type CommandExecuted struct {
	Input  string
	Result driving.CommandResult
	Err    error
}

// Failed reports whether the command was rejected.
func (m CommandExecuted) Failed() bool {
	return m.Err != nil
}

// DataFileChanged is sent when the data file was modified outside the app.
type DataFileChanged struct{}

// ReloadCompleted carries the result of re-reading the data file.
type ReloadCompleted struct {
	Changed bool
	Err     error
}
