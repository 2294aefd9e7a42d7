package commands

import (
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// Command is a single user action.
type Command interface {
	// Execute runs the command against model.
	Execute(model driving.Model) (driving.CommandResult, error)
}

// resolveIndex returns the candidate at index in the filtered list.
func resolveIndex(model driving.Model, index domain.Index) (domain.Candidate, error) {
	shown := model.FilteredCandidateList()
	if index.ZeroBased() >= len(shown) {
		return domain.Candidate{}, newError(MessageInvalidCandidateDisplayedIndex)
	}
	return shown[index.ZeroBased()], nil
}
