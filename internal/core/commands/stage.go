package commands

import (
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// MessageStageSuccess is reported after a candidate changes stage.
const MessageStageSuccess = "Moved %s to stage %s"

// StageCommand moves the candidate at a displayed index to another stage.
type StageCommand struct {
	index domain.Index
	stage domain.Stage
}

// NewStageCommand creates a StageCommand.
func NewStageCommand(index domain.Index, stage domain.Stage) *StageCommand {
	return &StageCommand{index: index, stage: stage}
}

// Execute updates the candidate's stage. The filter is left as is, so a
// candidate may drop out of view when the filter is by stage.
func (c *StageCommand) Execute(model driving.Model) (driving.CommandResult, error) {
	target, err := resolveIndex(model, c.index)
	if err != nil {
		return driving.CommandResult{}, err
	}
	if err := model.SetCandidate(target, target.WithStage(c.stage)); err != nil {
		return driving.CommandResult{}, Errorf(err, "Could not update stage: %v", err)
	}
	return driving.NewCommandResult(fmt.Sprintf(MessageStageSuccess, target.Name(), c.stage)), nil
}
