package commands

import (
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// MessageListSuccess is reported after the filter is removed.
const MessageListSuccess = "Listed all candidates"

// ListCommand shows every candidate.
type ListCommand struct{}

// Execute removes any filter.
func (ListCommand) Execute(model driving.Model) (driving.CommandResult, error) {
	model.UpdateFilteredCandidateList(domain.MatchAll{})
	return driving.NewCommandResult(MessageListSuccess), nil
}
