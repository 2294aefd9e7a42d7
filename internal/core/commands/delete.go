package commands

import (
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// MessageDeleteSuccess is reported after a candidate is deleted.
const MessageDeleteSuccess = "Deleted Candidate: %s"

// DeleteCommand deletes the candidate at a displayed index.
type DeleteCommand struct {
	targetIndex domain.Index
}

// NewDeleteCommand creates a DeleteCommand for the one-based displayed index.
func NewDeleteCommand(targetIndex domain.Index) *DeleteCommand {
	return &DeleteCommand{targetIndex: targetIndex}
}

// Execute deletes the candidate shown at the target index.
func (c *DeleteCommand) Execute(model driving.Model) (driving.CommandResult, error) {
	target, err := resolveIndex(model, c.targetIndex)
	if err != nil {
		return driving.CommandResult{}, err
	}
	if err := model.DeleteCandidate(target); err != nil {
		return driving.CommandResult{}, Errorf(err, "Could not delete candidate: %v", err)
	}
	return driving.NewCommandResult(fmt.Sprintf(MessageDeleteSuccess, Format(target))), nil
}

func (c *DeleteCommand) String() string {
	return fmt.Sprintf("DeleteCommand{targetIndex=%s}", c.targetIndex)
}
