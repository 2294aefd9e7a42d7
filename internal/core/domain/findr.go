package domain

import (
	"fmt"
	"strings"
)

// ReadOnlyFindr is an unmodifiable view of a Findr.
type ReadOnlyFindr interface {
	// Candidates returns a copy of the candidate list.
	Candidates() []Candidate

	// Tags returns a copy of the tag list.
	Tags() []Tag
}

// Findr wraps all data at the candidate-book level.
// It exclusively owns one candidate list and one tag list; duplicates are not
// allowed in either (candidates by IsSameCandidate, tags by name).
type Findr struct {
	candidates *UniqueList[Candidate]
	tags       *UniqueList[Tag]
}

// Ensure Findr implements the read-only view.
var _ ReadOnlyFindr = (*Findr)(nil)

// NewFindr creates an empty Findr.
func NewFindr() *Findr {
	return &Findr{
		candidates: NewUniqueList(SameCandidate, EqualCandidate),
		tags:       NewUniqueList(SameTag, SameTag),
	}
}

// NewFindrFrom creates a Findr holding a copy of data.
// It panics if data is nil.
func NewFindrFrom(data ReadOnlyFindr) (*Findr, error) {
	f := NewFindr()
	if err := f.ResetData(data); err != nil {
		return nil, err
	}
	return f, nil
}

// ResetData replaces both lists with the contents of data.
// Nothing is changed if either list in data contains duplicates.
// It panics if data is nil.
func (f *Findr) ResetData(data ReadOnlyFindr) error {
	if data == nil {
		panic("domain: ResetData called with nil data")
	}

	candidates := data.Candidates()
	tags := data.Tags()
	if err := f.candidates.CheckUnique(candidates); err != nil {
		return fmt.Errorf("candidates: %w", err)
	}
	if err := f.tags.CheckUnique(tags); err != nil {
		return fmt.Errorf("tags: %w", err)
	}

	if err := f.candidates.SetAll(candidates); err != nil {
		return err
	}
	return f.tags.SetAll(tags)
}

// SetCandidates replaces the candidate list. candidates must not contain duplicates.
func (f *Findr) SetCandidates(candidates []Candidate) error {
	return f.candidates.SetAll(candidates)
}

// HasCandidate reports whether a candidate with the same identity exists.
func (f *Findr) HasCandidate(c Candidate) bool {
	return f.candidates.Contains(c)
}

// AddCandidate adds c. The candidate must not already exist.
func (f *Findr) AddCandidate(c Candidate) error {
	return f.candidates.Add(c)
}

// SetCandidate replaces target with edited.
// target must exist and edited must not share an identity with another candidate.
func (f *Findr) SetCandidate(target, edited Candidate) error {
	return f.candidates.Set(target, edited)
}

// RemoveCandidate removes c, which must exist.
func (f *Findr) RemoveCandidate(c Candidate) error {
	return f.candidates.Remove(c)
}

// RemoveCandidatesIf removes every candidate matching pred and returns the count.
func (f *Findr) RemoveCandidatesIf(pred Predicate) int {
	return f.candidates.RemoveIf(pred.Test)
}

// SetTags replaces the tag list. tags must not contain duplicates.
func (f *Findr) SetTags(tags []Tag) error {
	return f.tags.SetAll(tags)
}

// HasTag reports whether t is in the tag list.
func (f *Findr) HasTag(t Tag) bool {
	return f.tags.Contains(t)
}

// AddTag adds t. The tag must not already exist.
func (f *Findr) AddTag(t Tag) error {
	return f.tags.Add(t)
}

// SetTag replaces target with edited.
func (f *Findr) SetTag(target, edited Tag) error {
	return f.tags.Set(target, edited)
}

// RemoveTag removes t, which must exist.
func (f *Findr) RemoveTag(t Tag) error {
	return f.tags.Remove(t)
}

// Candidates returns a copy of the candidate list.
func (f *Findr) Candidates() []Candidate {
	return f.candidates.Items()
}

// Tags returns a copy of the tag list.
func (f *Findr) Tags() []Tag {
	return f.tags.Items()
}

// Subscribe registers fn to be called after any change to either list.
// The returned function removes the subscription.
func (f *Findr) Subscribe(fn func()) func() {
	cancelCandidates := f.candidates.Subscribe(fn)
	cancelTags := f.tags.Subscribe(fn)
	return func() {
		cancelCandidates()
		cancelTags()
	}
}

// Equal reports whether other holds the same candidates and tags, in order.
func (f *Findr) Equal(other *Findr) bool {
	if other == nil {
		return false
	}
	if f == other {
		return true
	}
	return f.candidates.Equal(other.candidates) && f.tags.Equal(other.tags)
}

func (f *Findr) String() string {
	names := make([]string, 0, f.candidates.Len())
	for _, c := range f.candidates.Items() {
		names = append(names, c.Name().String())
	}
	tags := make([]string, 0, f.tags.Len())
	for _, t := range f.tags.Items() {
		tags = append(tags, t.String())
	}
	return fmt.Sprintf("Findr{candidates=[%s], tags=[%s]}", strings.Join(names, ", "), strings.Join(tags, ", "))
}
