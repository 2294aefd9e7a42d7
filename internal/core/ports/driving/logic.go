package driving

import (
	"context"

	"github.com/allanrobert0203/tp/internal/core/domain"
)

// CommandResult is what a command reports back to the user.
type CommandResult struct {
	// Feedback is the message shown to the user.
	Feedback string

	// ShowHelp asks the UI to display the help overlay.
	ShowHelp bool

	// Exit asks the UI to shut down.
	Exit bool
}

// NewCommandResult returns a result carrying only feedback.
func NewCommandResult(feedback string) CommandResult {
	return CommandResult{Feedback: feedback}
}

// Logic is the entry point used by every UI. It parses and runs command
// text, persists changes and exposes read-only state for display.
type Logic interface {
	// Execute parses text as a command and runs it.
	// Parse and command errors carry user-facing messages; storage failures
	// after a successful command are reported as a command error too.
	Execute(ctx context.Context, text string) (CommandResult, error)

	// Findr returns a read-only view of the candidate book.
	Findr() domain.ReadOnlyFindr

	// FilteredCandidateList returns the candidates currently shown.
	FilteredCandidateList() []domain.Candidate

	// FindrFilePath returns the data file location.
	FindrFilePath() string

	// GuiSettings returns the stored UI geometry.
	GuiSettings() domain.GuiSettings

	// SetGuiSettings records the UI geometry for the next session.
	SetGuiSettings(settings domain.GuiSettings)

	// Subscribe registers fn to run after the displayed state changes.
	Subscribe(fn func()) func()

	// Reload re-reads the candidate book from storage, replacing the model
	// if the stored data differs. It reports whether anything changed.
	Reload(ctx context.Context) (bool, error)
}
