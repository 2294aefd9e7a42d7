package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/core/domain"
)

var commandFormat = regexp.MustCompile(`(?s)^(\S+)(.*)$`)

// ParseCommand splits input into a command word and its arguments and hands
// the arguments to the parser for that word. Arguments keep their leading
// whitespace so prefixes directly after the command word are recognised.
func ParseCommand(input string) (commands.Command, error) {
	match := commandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return nil, &ParseError{Message: fmt.Sprintf(commands.MessageInvalidCommandFormat, commands.UsageHelp)}
	}
	word, args := match[1], match[2]

	switch word {
	case commands.WordAdd:
		return parseAdd(args)
	case commands.WordEdit:
		return parseEdit(args)
	case commands.WordDelete:
		return parseDelete(args)
	case commands.WordClear:
		return parseClear(args)
	case commands.WordFind:
		return parseFind(args)
	case commands.WordList:
		return commands.ListCommand{}, nil
	case commands.WordAddTag:
		return parseAddTag(args)
	case commands.WordDeleteTag:
		return parseDeleteTag(args)
	case commands.WordStage:
		return parseStage(args)
	case commands.WordHelp:
		return commands.HelpCommand{}, nil
	case commands.WordExit:
		return commands.ExitCommand{}, nil
	default:
		return nil, &ParseError{Message: commands.MessageUnknownCommand}
	}
}

func parseAdd(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixStage, PrefixTag)

	if !m.Has(PrefixName) || !m.Has(PrefixPhone) || !m.Has(PrefixEmail) || !m.Has(PrefixAddress) ||
		m.Preamble() != "" {
		return nil, invalidFormat(commands.UsageAdd, nil)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixStage); err != nil {
		return nil, err
	}

	name, _ := m.Value(PrefixName)
	phone, _ := m.Value(PrefixPhone)
	email, _ := m.Value(PrefixEmail)
	address, _ := m.Value(PrefixAddress)

	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	p, err := ParsePhone(phone)
	if err != nil {
		return nil, err
	}
	e, err := ParseEmail(email)
	if err != nil {
		return nil, err
	}
	a, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}

	stage := domain.DefaultStage
	if raw, ok := m.Value(PrefixStage); ok {
		if stage, err = ParseStage(raw); err != nil {
			return nil, err
		}
	}

	tags, err := ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	c, err := domain.NewCandidate(n, p, e, a, stage, tags)
	if err != nil {
		return nil, fromValidation(err)
	}
	return commands.NewAddCommand(c), nil
}

func parseEdit(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixStage, PrefixTag)

	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.UsageEdit, err)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixStage); err != nil {
		return nil, err
	}

	var d commands.EditCandidateDescriptor
	if raw, ok := m.Value(PrefixName); ok {
		v, err := ParseName(raw)
		if err != nil {
			return nil, err
		}
		d.Name = &v
	}
	if raw, ok := m.Value(PrefixPhone); ok {
		v, err := ParsePhone(raw)
		if err != nil {
			return nil, err
		}
		d.Phone = &v
	}
	if raw, ok := m.Value(PrefixEmail); ok {
		v, err := ParseEmail(raw)
		if err != nil {
			return nil, err
		}
		d.Email = &v
	}
	if raw, ok := m.Value(PrefixAddress); ok {
		v, err := ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		d.Address = &v
	}
	if raw, ok := m.Value(PrefixStage); ok {
		v, err := ParseStage(raw)
		if err != nil {
			return nil, err
		}
		d.Stage = &v
	}
	if d.Tags, err = parseTagsForEdit(m.AllValues(PrefixTag)); err != nil {
		return nil, err
	}

	if !d.IsAnyFieldEdited() {
		return nil, &ParseError{Message: commands.MessageNotEdited}
	}
	return commands.NewEditCommand(index, d), nil
}

// parseTagsForEdit returns nil when no tag was given, and an empty set for a
// single bare "t/", which clears the candidate's tags.
func parseTagsForEdit(values []string) (*[]domain.Tag, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && values[0] == "" {
		empty := []domain.Tag{}
		return &empty, nil
	}
	tags, err := ParseTags(values)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}

func parseDelete(args string) (commands.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(commands.UsageDelete, err)
	}
	return commands.NewDeleteCommand(index), nil
}

func parseClear(args string) (commands.Command, error) {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return nil, invalidFormat(commands.UsageClear, nil)
	}
	if strings.EqualFold(trimmed, "all") {
		return commands.NewClearAllCommand(), nil
	}
	stage, err := ParseStage(trimmed)
	if err != nil {
		return nil, invalidFormat(commands.UsageClear, err)
	}
	return commands.NewClearStageCommand(stage), nil
}

func parseFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.UsageFind, nil)
	}
	return commands.NewFindCommand(domain.NameContainsKeywords{Keywords: keywords}), nil
}

func parseAddTag(args string) (commands.Command, error) {
	names := strings.Fields(args)
	if len(names) == 0 {
		return nil, invalidFormat(commands.UsageAddTag, nil)
	}
	tags, err := ParseTags(names)
	if err != nil {
		return nil, err
	}
	return commands.NewAddTagCommand(tags), nil
}

func parseDeleteTag(args string) (commands.Command, error) {
	names := strings.Fields(args)
	if len(names) != 1 {
		return nil, invalidFormat(commands.UsageDeleteTag, nil)
	}
	tag, err := ParseTag(names[0])
	if err != nil {
		return nil, err
	}
	return commands.NewDeleteTagCommand(tag), nil
}

func parseStage(args string) (commands.Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return nil, invalidFormat(commands.UsageStage, nil)
	}
	index, err := ParseIndex(fields[0])
	if err != nil {
		return nil, invalidFormat(commands.UsageStage, err)
	}
	stage, err := ParseStage(fields[1])
	if err != nil {
		return nil, err
	}
	return commands.NewStageCommand(index, stage), nil
}
