package commands

import (
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// Edit command messages.
const (
	MessageEditSuccess = "Edited Candidate: %s"
	MessageNotEdited   = "At least one field to edit must be provided."
)

// EditCandidateDescriptor holds the fields to change on a candidate.
// A nil field is left unchanged. A non-nil Tags replaces every tag, so a
// pointer to an empty slice removes them all.
type EditCandidateDescriptor struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Email   *domain.Email
	Address *domain.Address
	Stage   *domain.Stage
	Tags    *[]domain.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditCandidateDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil ||
		d.Address != nil || d.Stage != nil || d.Tags != nil
}

// Apply returns a copy of c with the descriptor's fields substituted.
func (d EditCandidateDescriptor) Apply(c domain.Candidate) (domain.Candidate, error) {
	name, phone, email, address, stage, tags :=
		c.Name(), c.Phone(), c.Email(), c.Address(), c.Stage(), c.Tags()

	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Email != nil {
		email = *d.Email
	}
	if d.Address != nil {
		address = *d.Address
	}
	if d.Stage != nil {
		stage = *d.Stage
	}
	if d.Tags != nil {
		tags = *d.Tags
	}
	return domain.NewCandidate(name, phone, email, address, stage, tags)
}

// EditCommand edits the candidate at a displayed index.
type EditCommand struct {
	index      domain.Index
	descriptor EditCandidateDescriptor
}

// NewEditCommand creates an EditCommand. The descriptor is copied.
func NewEditCommand(index domain.Index, descriptor EditCandidateDescriptor) *EditCommand {
	return &EditCommand{index: index, descriptor: descriptor}
}

// Execute replaces the candidate shown at the index with its edited copy.
// Editing into the identity of another candidate fails.
func (c *EditCommand) Execute(model driving.Model) (driving.CommandResult, error) {
	target, err := resolveIndex(model, c.index)
	if err != nil {
		return driving.CommandResult{}, err
	}

	edited, err := c.descriptor.Apply(target)
	if err != nil {
		return driving.CommandResult{}, Errorf(err, "%s", err.Error())
	}

	if !target.IsSameCandidate(edited) && model.HasCandidate(edited) {
		return driving.CommandResult{}, newError(MessageDuplicateCandidate)
	}

	if err := model.SetCandidate(target, edited); err != nil {
		return driving.CommandResult{}, Errorf(err, "Could not edit candidate: %v", err)
	}
	model.UpdateFilteredCandidateList(domain.MatchAll{})
	return driving.NewCommandResult(fmt.Sprintf(MessageEditSuccess, Format(edited))), nil
}

func (c *EditCommand) String() string {
	return fmt.Sprintf("EditCommand{index=%s}", c.index)
}
