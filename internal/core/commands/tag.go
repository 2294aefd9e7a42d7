package commands

import (
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// Tag command messages.
const (
	MessageAddTagSuccess    = "New tag(s) added: %s"
	MessageDuplicateTag     = "This tag already exists in Findr: %s"
	MessageDeleteTagSuccess = "Deleted Tag: %s"
	MessageTagNotFound      = "This tag does not exist in Findr: %s"
)

// AddTagCommand registers tags in the tag list.
type AddTagCommand struct {
	tags []domain.Tag
}

// NewAddTagCommand creates an AddTagCommand. tags must not be empty.
func NewAddTagCommand(tags []domain.Tag) *AddTagCommand {
	return &AddTagCommand{tags: append([]domain.Tag(nil), tags...)}
}

// Execute adds every tag. Nothing is added if any tag is already registered
// or named twice.
func (c *AddTagCommand) Execute(model driving.Model) (driving.CommandResult, error) {
	seen := make(map[domain.Tag]bool, len(c.tags))
	for _, t := range c.tags {
		if model.HasTag(t) || seen[t] {
			return driving.CommandResult{}, newError(fmt.Sprintf(MessageDuplicateTag, t))
		}
		seen[t] = true
	}
	for _, t := range c.tags {
		if err := model.AddTag(t); err != nil {
			return driving.CommandResult{}, Errorf(err, "Could not add tag %s: %v", t, err)
		}
	}
	return driving.NewCommandResult(fmt.Sprintf(MessageAddTagSuccess, FormatTags(c.tags))), nil
}

// DeleteTagCommand unregisters a tag and strips it from every candidate.
type DeleteTagCommand struct {
	tag domain.Tag
}

// NewDeleteTagCommand creates a DeleteTagCommand.
func NewDeleteTagCommand(tag domain.Tag) *DeleteTagCommand {
	return &DeleteTagCommand{tag: tag}
}

// Execute deletes the tag, which must be registered.
func (c *DeleteTagCommand) Execute(model driving.Model) (driving.CommandResult, error) {
	if !model.HasTag(c.tag) {
		return driving.CommandResult{}, newError(fmt.Sprintf(MessageTagNotFound, c.tag))
	}
	if err := model.DeleteTag(c.tag); err != nil {
		return driving.CommandResult{}, Errorf(err, "Could not delete tag %s: %v", c.tag, err)
	}
	return driving.NewCommandResult(fmt.Sprintf(MessageDeleteTagSuccess, c.tag)), nil
}
