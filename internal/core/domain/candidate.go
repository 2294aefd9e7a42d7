package domain

import (
	"fmt"
	"strings"
)

// Candidate is a person tracked by Findr.
// Candidates are immutable; the With* methods return modified copies.
type Candidate struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	stage   Stage
	tags    []Tag
}

// NewCandidate creates a candidate from already-validated fields.
// It fails if any field is unset or the stage is unknown.
func NewCandidate(name Name, phone Phone, email Email, address Address, stage Stage, tags []Tag) (Candidate, error) {
	switch {
	case name.IsZero():
		return Candidate{}, invalid("Name", MessageNameConstraints)
	case phone.IsZero():
		return Candidate{}, invalid("Phone", MessagePhoneConstraints)
	case email.IsZero():
		return Candidate{}, invalid("Email", MessageEmailConstraints)
	case address.IsZero():
		return Candidate{}, invalid("Address", MessageAddressConstraints)
	case !stage.IsValid():
		return Candidate{}, invalid("Stage", MessageStageConstraints)
	}

	for _, t := range tags {
		if t.name == "" {
			return Candidate{}, invalid("Tag", MessageTagConstraints)
		}
	}

	return Candidate{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		stage:   stage,
		tags:    sortedTagSet(tags),
	}, nil
}

// Name returns the candidate's name.
func (c Candidate) Name() Name { return c.name }

// Phone returns the candidate's phone number.
func (c Candidate) Phone() Phone { return c.phone }

// Email returns the candidate's email address.
func (c Candidate) Email() Email { return c.email }

// Address returns the candidate's address.
func (c Candidate) Address() Address { return c.address }

// Stage returns the candidate's pipeline stage.
func (c Candidate) Stage() Stage { return c.stage }

// Tags returns a sorted copy of the candidate's tags.
func (c Candidate) Tags() []Tag {
	out := make([]Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// HasTag reports whether the candidate carries t.
func (c Candidate) HasTag(t Tag) bool {
	for _, own := range c.tags {
		if own == t {
			return true
		}
	}
	return false
}

// WithStage returns a copy of c moved to stage.
func (c Candidate) WithStage(stage Stage) Candidate {
	c.stage = stage
	c.tags = c.Tags()
	return c
}

// WithoutTag returns a copy of c with t removed.
func (c Candidate) WithoutTag(t Tag) Candidate {
	kept := make([]Tag, 0, len(c.tags))
	for _, own := range c.tags {
		if own != t {
			kept = append(kept, own)
		}
	}
	c.tags = kept
	return c
}

// IsSameCandidate reports whether other has the same identity as c.
// Two candidates are the same when both name and email match; this is
// weaker than Equal and is what the candidate list uses for uniqueness.
func (c Candidate) IsSameCandidate(other Candidate) bool {
	return c.name == other.name && c.email == other.email
}

// Equal reports whether every field of other matches c.
func (c Candidate) Equal(other Candidate) bool {
	if c.name != other.name || c.phone != other.phone || c.email != other.email ||
		c.address != other.address || c.stage != other.stage {
		return false
	}
	if len(c.tags) != len(other.tags) {
		return false
	}
	for i := range c.tags {
		if c.tags[i] != other.tags[i] {
			return false
		}
	}
	return true
}

// String renders all fields for debugging.
func (c Candidate) String() string {
	tags := make([]string, len(c.tags))
	for i, t := range c.tags {
		tags[i] = t.String()
	}
	return fmt.Sprintf("Candidate{name=%s, phone=%s, email=%s, address=%s, stage=%s, tags=[%s]}",
		c.name, c.phone, c.email, c.address, c.stage, strings.Join(tags, ", "))
}

// SameCandidate is the identity function used by the candidate list.
func SameCandidate(a, b Candidate) bool {
	return a.IsSameCandidate(b)
}

// EqualCandidate is the full-equality function used by the candidate list.
func EqualCandidate(a, b Candidate) bool {
	return a.Equal(b)
}
