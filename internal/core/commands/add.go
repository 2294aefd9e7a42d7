package commands

import (
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// MessageAddSuccess is reported after a candidate is added.
const MessageAddSuccess = "New candidate added: %s"

// AddCommand adds a candidate to the candidate book.
type AddCommand struct {
	toAdd domain.Candidate
}

// NewAddCommand creates an AddCommand for c.
func NewAddCommand(c domain.Candidate) *AddCommand {
	return &AddCommand{toAdd: c}
}

// Execute adds the candidate unless one with the same identity exists.
func (c *AddCommand) Execute(model driving.Model) (driving.CommandResult, error) {
	if model.HasCandidate(c.toAdd) {
		return driving.CommandResult{}, newError(MessageDuplicateCandidate)
	}
	if err := model.AddCandidate(c.toAdd); err != nil {
		return driving.CommandResult{}, Errorf(err, "Could not add candidate: %v", err)
	}
	return driving.NewCommandResult(fmt.Sprintf(MessageAddSuccess, Format(c.toAdd))), nil
}

func (c *AddCommand) String() string {
	return fmt.Sprintf("AddCommand{toAdd=%s}", c.toAdd)
}
