package testutil

import (
	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/core/domain"
)

// EditDescriptorBuilder builds commands.EditCandidateDescriptor values.
type EditDescriptorBuilder struct {
	d commands.EditCandidateDescriptor
}

// NewEditDescriptorBuilder starts from an empty descriptor.
func NewEditDescriptorBuilder() *EditDescriptorBuilder {
	return &EditDescriptorBuilder{}
}

// EditDescriptorFrom returns a descriptor setting every field of c.
func EditDescriptorFrom(c domain.Candidate) *EditDescriptorBuilder {
	name, phone, email, address, stage, tags :=
		c.Name(), c.Phone(), c.Email(), c.Address(), c.Stage(), c.Tags()
	return &EditDescriptorBuilder{d: commands.EditCandidateDescriptor{
		Name: &name, Phone: &phone, Email: &email, Address: &address, Stage: &stage, Tags: &tags,
	}}
}

func (b *EditDescriptorBuilder) WithName(s string) *EditDescriptorBuilder {
	v := MustName(s)
	b.d.Name = &v
	return b
}

func (b *EditDescriptorBuilder) WithPhone(s string) *EditDescriptorBuilder {
	v := MustPhone(s)
	b.d.Phone = &v
	return b
}

func (b *EditDescriptorBuilder) WithEmail(s string) *EditDescriptorBuilder {
	v := MustEmail(s)
	b.d.Email = &v
	return b
}

func (b *EditDescriptorBuilder) WithAddress(s string) *EditDescriptorBuilder {
	v := MustAddress(s)
	b.d.Address = &v
	return b
}

func (b *EditDescriptorBuilder) WithStage(stage domain.Stage) *EditDescriptorBuilder {
	b.d.Stage = &stage
	return b
}

// WithTags replaces the tag set. Calling it with no names clears all tags.
func (b *EditDescriptorBuilder) WithTags(names ...string) *EditDescriptorBuilder {
	tags := MustTags(names...)
	b.d.Tags = &tags
	return b
}

// Build returns the descriptor.
func (b *EditDescriptorBuilder) Build() commands.EditCandidateDescriptor {
	return b.d
}
