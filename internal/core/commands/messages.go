package commands

import (
	"strings"

	"github.com/allanrobert0203/tp/internal/core/domain"
)

// Messages shared by several commands and the parser.
const (
	MessageUnknownCommand                 = "Unknown command"
	MessageInvalidCommandFormat           = "Invalid command format! \n%s"
	MessageInvalidCandidateDisplayedIndex = "The candidate index provided is invalid"
	MessageCandidatesListedOverview       = "%d candidates listed!"
	MessageDuplicateFields                = "Multiple values specified for the following single-valued field(s): "
	MessageDuplicateCandidate             = "This candidate already exists in Findr"
	MessageSaveFailed                     = "Could not save data due to the following error: %s"
)

// Format renders a candidate for user feedback.
func Format(c domain.Candidate) string {
	var b strings.Builder
	b.WriteString(c.Name().String())
	b.WriteString("; Phone: ")
	b.WriteString(c.Phone().String())
	b.WriteString("; Email: ")
	b.WriteString(c.Email().String())
	b.WriteString("; Address: ")
	b.WriteString(c.Address().String())
	b.WriteString("; Stage: ")
	b.WriteString(c.Stage().String())
	b.WriteString("; Tags: ")
	for _, t := range c.Tags() {
		b.WriteString(t.String())
	}
	return b.String()
}

// FormatTags renders tags separated by spaces.
func FormatTags(tags []domain.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
