package testutil

import (
	"github.com/allanrobert0203/tp/internal/core/domain"
)

// Default field values used by CandidateBuilder.
const (
	DefaultName    = "Amy Bee"
	DefaultPhone   = "85355255"
	DefaultEmail   = "amy@gmail.com"
	DefaultAddress = "123, Jurong West Ave 6, #08-111"
)

// CandidateBuilder builds domain.Candidate values for tests.
type CandidateBuilder struct {
	name    string
	phone   string
	email   string
	address string
	stage   domain.Stage
	tags    []string
}

// NewCandidateBuilder starts from the default candidate.
func NewCandidateBuilder() *CandidateBuilder {
	return &CandidateBuilder{
		name:    DefaultName,
		phone:   DefaultPhone,
		email:   DefaultEmail,
		address: DefaultAddress,
		stage:   domain.DefaultStage,
	}
}

// CandidateBuilderFrom starts from a copy of c.
func CandidateBuilderFrom(c domain.Candidate) *CandidateBuilder {
	b := &CandidateBuilder{
		name:    c.Name().String(),
		phone:   c.Phone().String(),
		email:   c.Email().String(),
		address: c.Address().String(),
		stage:   c.Stage(),
	}
	for _, t := range c.Tags() {
		b.tags = append(b.tags, t.Name())
	}
	return b
}

// WithName sets the name.
func (b *CandidateBuilder) WithName(name string) *CandidateBuilder {
	b.name = name
	return b
}

// WithPhone sets the phone number.
func (b *CandidateBuilder) WithPhone(phone string) *CandidateBuilder {
	b.phone = phone
	return b
}

// WithEmail sets the email address.
func (b *CandidateBuilder) WithEmail(email string) *CandidateBuilder {
	b.email = email
	return b
}

// WithAddress sets the address.
func (b *CandidateBuilder) WithAddress(address string) *CandidateBuilder {
	b.address = address
	return b
}

// WithStage sets the stage.
func (b *CandidateBuilder) WithStage(stage domain.Stage) *CandidateBuilder {
	b.stage = stage
	return b
}

// WithTags replaces the tags.
func (b *CandidateBuilder) WithTags(tags ...string) *CandidateBuilder {
	b.tags = append([]string(nil), tags...)
	return b
}

// Build creates the candidate. It panics on invalid field values.
func (b *CandidateBuilder) Build() domain.Candidate {
	c, err := domain.NewCandidate(
		MustName(b.name), MustPhone(b.phone), MustEmail(b.email), MustAddress(b.address),
		b.stage, MustTags(b.tags...),
	)
	if err != nil {
		panic(err)
	}
	return c
}

// MustName parses s or panics.
func MustName(s string) domain.Name {
	v, err := domain.NewName(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustPhone parses s or panics.
func MustPhone(s string) domain.Phone {
	v, err := domain.NewPhone(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustEmail parses s or panics.
func MustEmail(s string) domain.Email {
	v, err := domain.NewEmail(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustAddress parses s or panics.
func MustAddress(s string) domain.Address {
	v, err := domain.NewAddress(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustTag parses s or panics.
func MustTag(s string) domain.Tag {
	v, err := domain.NewTag(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustTags parses every name or panics. The result is never nil.
func MustTags(names ...string) []domain.Tag {
	tags := make([]domain.Tag, 0, len(names))
	for _, n := range names {
		tags = append(tags, MustTag(n))
	}
	return tags
}
