package parser

import (
	"strconv"
	"strings"

	"github.com/allanrobert0203/tp/internal/core/domain"
)

// MessageInvalidIndex is the cause attached to index format errors.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex parses a one-based index. Leading and trailing whitespace is
// ignored; signs, zero and non-numbers are rejected.
func ParseIndex(s string) (domain.Index, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '+' || s[0] == '-' {
		return domain.Index{}, &ParseError{Message: MessageInvalidIndex}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return domain.Index{}, &ParseError{Message: MessageInvalidIndex, Err: err}
	}
	return domain.IndexFromOneBased(n), nil
}

// ParseName trims s and validates it as a name.
func ParseName(s string) (domain.Name, error) {
	v, err := domain.NewName(strings.TrimSpace(s))
	if err != nil {
		return domain.Name{}, fromValidation(err)
	}
	return v, nil
}

// ParsePhone trims s and validates it as a phone number.
func ParsePhone(s string) (domain.Phone, error) {
	v, err := domain.NewPhone(strings.TrimSpace(s))
	if err != nil {
		return domain.Phone{}, fromValidation(err)
	}
	return v, nil
}

// ParseEmail trims s and validates it as an email address.
func ParseEmail(s string) (domain.Email, error) {
	v, err := domain.NewEmail(strings.TrimSpace(s))
	if err != nil {
		return domain.Email{}, fromValidation(err)
	}
	return v, nil
}

// ParseAddress trims s and validates it as an address.
func ParseAddress(s string) (domain.Address, error) {
	v, err := domain.NewAddress(strings.TrimSpace(s))
	if err != nil {
		return domain.Address{}, fromValidation(err)
	}
	return v, nil
}

// ParseStage trims s and matches it against the known stages, ignoring case.
func ParseStage(s string) (domain.Stage, error) {
	v, err := domain.ParseStage(strings.TrimSpace(s))
	if err != nil {
		return "", fromValidation(err)
	}
	return v, nil
}

// ParseTag trims s and validates it as a tag name.
func ParseTag(s string) (domain.Tag, error) {
	v, err := domain.NewTag(strings.TrimSpace(s))
	if err != nil {
		return domain.Tag{}, fromValidation(err)
	}
	return v, nil
}

// ParseTags parses every tag name. The result is never nil.
func ParseTags(names []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(names))
	for _, n := range names {
		t, err := ParseTag(n)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}
