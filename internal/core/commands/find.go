package commands

import (
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// FindCommand shows the candidates whose names contain any keyword.
type FindCommand struct {
	predicate domain.NameContainsKeywords
}

// NewFindCommand creates a FindCommand.
func NewFindCommand(predicate domain.NameContainsKeywords) *FindCommand {
	return &FindCommand{predicate: predicate}
}

// Execute installs the keyword filter and reports how many candidates match.
func (c *FindCommand) Execute(model driving.Model) (driving.CommandResult, error) {
	model.UpdateFilteredCandidateList(c.predicate)
	return driving.NewCommandResult(
		fmt.Sprintf(MessageCandidatesListedOverview, len(model.FilteredCandidateList()))), nil
}
