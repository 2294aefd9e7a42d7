package commands

import (
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// Clear command messages.
const (
	MessageClearAllSuccess   = "Findr has been cleared!"
	MessageClearStageSuccess = "Cleared %d candidate(s) at stage %s!"
)

// ClearCommand deletes every candidate, or only those at one stage.
// It ignores the current filter.
type ClearCommand struct {
	stage domain.Stage
	all   bool
}

// NewClearAllCommand creates a ClearCommand that removes every candidate.
func NewClearAllCommand() *ClearCommand {
	return &ClearCommand{all: true}
}

// NewClearStageCommand creates a ClearCommand that removes candidates at stage.
func NewClearStageCommand(stage domain.Stage) *ClearCommand {
	return &ClearCommand{stage: stage}
}

// Execute removes the selected candidates.
func (c *ClearCommand) Execute(model driving.Model) (driving.CommandResult, error) {
	if c.all {
		model.ClearCandidates()
		return driving.NewCommandResult(MessageClearAllSuccess), nil
	}
	removed := model.ClearCandidatesAtStage(c.stage)
	return driving.NewCommandResult(fmt.Sprintf(MessageClearStageSuccess, removed, c.stage)), nil
}

func (c *ClearCommand) String() string {
	if c.all {
		return "ClearCommand{all}"
	}
	return fmt.Sprintf("ClearCommand{stage=%s}", c.stage)
}
