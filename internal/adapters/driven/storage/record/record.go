// Package record converts between domain objects and their flat persisted
// form. Storage backends share it so every backend applies the same checks
// on load.
package record

import (
	"errors"
	"fmt"

	"github.com/allanrobert0203/tp/internal/core/domain"
)

// Messages for data that cannot be loaded.
const (
	MessageMissingField        = "Candidate's %s field is missing!"
	MessageUnknownTag          = "Candidate references unknown tag: %s"
	MessageDuplicateCandidates = "Candidates list contains duplicate candidate(s)."
	MessageDuplicateTags       = "Tags list contains duplicate tag(s)."
)

// Candidate is the persisted form of a domain.Candidate.
// Pointer fields distinguish a missing value from an empty one.
type Candidate struct {
	Name    *string  `json:"name"`
	Phone   *string  `json:"phone"`
	Email   *string  `json:"email"`
	Address *string  `json:"address"`
	Stage   *string  `json:"stage"`
	Tags    []string `json:"tags"`
}

// Findr is the persisted form of a domain.Findr.
type Findr struct {
	Candidates []Candidate `json:"candidates"`
	Tags       []string    `json:"tags"`
}

// FromCandidate flattens c.
func FromCandidate(c domain.Candidate) Candidate {
	tags := make([]string, 0, len(c.Tags()))
	for _, t := range c.Tags() {
		tags = append(tags, t.Name())
	}
	return Candidate{
		Name:    ptr(c.Name().String()),
		Phone:   ptr(c.Phone().String()),
		Email:   ptr(c.Email().String()),
		Address: ptr(c.Address().String()),
		Stage:   ptr(c.Stage().String()),
		Tags:    tags,
	}
}

// FromFindr flattens both lists of data.
func FromFindr(data domain.ReadOnlyFindr) Findr {
	candidates := data.Candidates()
	tags := data.Tags()

	out := Findr{
		Candidates: make([]Candidate, 0, len(candidates)),
		Tags:       make([]string, 0, len(tags)),
	}
	for _, c := range candidates {
		out.Candidates = append(out.Candidates, FromCandidate(c))
	}
	for _, t := range tags {
		out.Tags = append(out.Tags, t.Name())
	}
	return out
}

// ToDomain validates every field and builds the candidate.
func (r Candidate) ToDomain() (domain.Candidate, error) {
	name, err := field(r.Name, "Name", domain.NewName)
	if err != nil {
		return domain.Candidate{}, err
	}
	phone, err := field(r.Phone, "Phone", domain.NewPhone)
	if err != nil {
		return domain.Candidate{}, err
	}
	email, err := field(r.Email, "Email", domain.NewEmail)
	if err != nil {
		return domain.Candidate{}, err
	}
	address, err := field(r.Address, "Address", domain.NewAddress)
	if err != nil {
		return domain.Candidate{}, err
	}
	stage, err := field(r.Stage, "Stage", domain.ParseStage)
	if err != nil {
		return domain.Candidate{}, err
	}

	tags := make([]domain.Tag, 0, len(r.Tags))
	for _, s := range r.Tags {
		t, err := domain.NewTag(s)
		if err != nil {
			return domain.Candidate{}, illegal(err)
		}
		tags = append(tags, t)
	}

	c, err := domain.NewCandidate(name, phone, email, address, stage, tags)
	if err != nil {
		return domain.Candidate{}, illegal(err)
	}
	return c, nil
}

// ToDomain builds a Findr from r. The load is all or nothing: any invalid
// field, unknown tag reference or duplicate fails it.
func (r Findr) ToDomain() (*domain.Findr, error) {
	f := domain.NewFindr()

	for _, s := range r.Tags {
		t, err := domain.NewTag(s)
		if err != nil {
			return nil, illegal(err)
		}
		if f.HasTag(t) {
			return nil, &domain.IllegalValueError{Message: MessageDuplicateTags, Err: domain.ErrDuplicate}
		}
		if err := f.AddTag(t); err != nil {
			return nil, fmt.Errorf("adding tag %s: %w", t, err)
		}
	}

	for _, rc := range r.Candidates {
		c, err := rc.ToDomain()
		if err != nil {
			return nil, err
		}
		for _, t := range c.Tags() {
			if !f.HasTag(t) {
				return nil, domain.NewIllegalValueError(MessageUnknownTag, t.Name())
			}
		}
		if f.HasCandidate(c) {
			return nil, &domain.IllegalValueError{Message: MessageDuplicateCandidates, Err: domain.ErrDuplicate}
		}
		if err := f.AddCandidate(c); err != nil {
			return nil, fmt.Errorf("adding candidate %s: %w", c.Name(), err)
		}
	}

	return f, nil
}

func field[T any](value *string, name string, parse func(string) (T, error)) (T, error) {
	var zero T
	if value == nil {
		return zero, domain.NewIllegalValueError(MessageMissingField, name)
	}
	v, err := parse(*value)
	if err != nil {
		return zero, illegal(err)
	}
	return v, nil
}

// illegal turns a validation failure into an IllegalValueError carrying the
// constraint message.
func illegal(err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return &domain.IllegalValueError{Message: verr.Message, Err: err}
	}
	return &domain.IllegalValueError{Message: err.Error(), Err: err}
}

func ptr(s string) *string {
	return &s
}
