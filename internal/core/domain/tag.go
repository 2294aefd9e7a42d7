package domain

import (
	"regexp"
	"sort"
)

// MessageTagConstraints is shown when a tag name is rejected.
const MessageTagConstraints = "Tags names should be alphanumeric"

var tagRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Tag is a label attached to candidates.
// Two tags are the same if their names are equal, so Tag values compare with ==.
type Tag struct {
	name string
}

// IsValidTagName reports whether s is an acceptable tag name.
func IsValidTagName(s string) bool {
	return tagRegex.MatchString(s)
}

// NewTag validates name and returns a Tag.
func NewTag(name string) (Tag, error) {
	if !IsValidTagName(name) {
		return Tag{}, invalid("Tag", MessageTagConstraints)
	}
	return Tag{name: name}, nil
}

// Name returns the tag label.
func (t Tag) Name() string {
	return t.name
}

// String renders the tag in brackets.
func (t Tag) String() string {
	return "[" + t.name + "]"
}

// SameTag is the identity function used by the tag list.
func SameTag(a, b Tag) bool {
	return a == b
}

// sortedTagSet returns a sorted copy of tags with duplicates removed.
// The result is never nil.
func sortedTagSet(tags []Tag) []Tag {
	seen := make(map[Tag]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
