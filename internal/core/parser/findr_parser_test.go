package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/testutil"
)

const (
	nameDescAmy    = " n/" + testutil.ValidNameAmy
	nameDescBob    = " n/" + testutil.ValidNameBob
	phoneDescAmy   = " p/" + testutil.ValidPhoneAmy
	phoneDescBob   = " p/" + testutil.ValidPhoneBob
	emailDescAmy   = " e/" + testutil.ValidEmailAmy
	emailDescBob   = " e/" + testutil.ValidEmailBob
	addressDescAmy = " a/" + testutil.ValidAddressAmy
	addressDescBob = " a/" + testutil.ValidAddressBob
	stageDescBob   = " s/interview"
	tagDescFriend  = " t/" + testutil.ValidTagFriend
	tagDescHusband = " t/" + testutil.ValidTagHusband

	invalidNameDesc    = " n/" + testutil.InvalidName
	invalidPhoneDesc   = " p/" + testutil.InvalidPhone
	invalidEmailDesc   = " e/" + testutil.InvalidEmail
	invalidAddressDesc = " a/" + testutil.InvalidAddress
	invalidStageDesc   = " s/" + testutil.InvalidStage
	invalidTagDesc     = " t/" + testutil.InvalidTag
)

func assertParseSuccess(t *testing.T, input string, expected commands.Command) {
	t.Helper()
	cmd, err := ParseCommand(input)
	require.NoError(t, err)
	assert.Equal(t, expected, cmd)
}

func assertParseFailure(t *testing.T, input string, expectedMessage string) {
	t.Helper()
	_, err := ParseCommand(input)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, expectedMessage, perr.Error())
}

func formatError(usage string) string {
	return fmt.Sprintf(commands.MessageInvalidCommandFormat, usage)
}

func TestParseCommand_UnknownAndEmpty(t *testing.T) {
	assertParseFailure(t, "", formatError(commands.UsageHelp))
	assertParseFailure(t, "   ", formatError(commands.UsageHelp))
	assertParseFailure(t, "unknownCommand", commands.MessageUnknownCommand)
	assertParseFailure(t, "ADD n/Amy", commands.MessageUnknownCommand)
}

func TestParseCommand_NoArgumentCommands(t *testing.T) {
	assertParseSuccess(t, "list", commands.ListCommand{})
	assertParseSuccess(t, "list 3", commands.ListCommand{})
	assertParseSuccess(t, "help", commands.HelpCommand{})
	assertParseSuccess(t, "  exit  ", commands.ExitCommand{})
}

func TestParseAdd(t *testing.T) {
	bob := testutil.Bob()

	t.Run("all fields present", func(t *testing.T) {
		assertParseSuccess(t, "add"+nameDescBob+phoneDescBob+emailDescBob+addressDescBob+stageDescBob+
			tagDescFriend+tagDescHusband, commands.NewAddCommand(bob))
	})

	t.Run("whitespace before command word", func(t *testing.T) {
		assertParseSuccess(t, "   add"+nameDescBob+phoneDescBob+emailDescBob+addressDescBob+stageDescBob+
			tagDescHusband+tagDescFriend, commands.NewAddCommand(bob))
	})

	t.Run("optional fields missing", func(t *testing.T) {
		expected := testutil.CandidateBuilderFrom(testutil.Amy()).
			WithStage(domain.DefaultStage).WithTags().Build()
		assertParseSuccess(t, "add"+nameDescAmy+phoneDescAmy+emailDescAmy+addressDescAmy,
			commands.NewAddCommand(expected))
	})

	t.Run("compulsory field missing", func(t *testing.T) {
		expected := formatError(commands.UsageAdd)
		assertParseFailure(t, "add"+phoneDescBob+emailDescBob+addressDescBob, expected)
		assertParseFailure(t, "add"+nameDescBob+emailDescBob+addressDescBob, expected)
		assertParseFailure(t, "add"+nameDescBob+phoneDescBob+addressDescBob, expected)
		assertParseFailure(t, "add"+nameDescBob+phoneDescBob+emailDescBob, expected)
		assertParseFailure(t, "add", expected)
	})

	t.Run("non-empty preamble", func(t *testing.T) {
		assertParseFailure(t, "add some random string"+nameDescBob+phoneDescBob+emailDescBob+addressDescBob,
			formatError(commands.UsageAdd))
	})

	t.Run("repeated single-valued fields", func(t *testing.T) {
		valid := nameDescBob + phoneDescBob + emailDescBob + addressDescBob
		assertParseFailure(t, "add"+nameDescAmy+valid, commands.MessageDuplicateFields+"n/")
		assertParseFailure(t, "add"+valid+phoneDescAmy+emailDescAmy,
			commands.MessageDuplicateFields+"p/ e/")
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name    string
			input   string
			message string
		}{
			{"name", invalidNameDesc + phoneDescBob + emailDescBob + addressDescBob, domain.MessageNameConstraints},
			{"phone", nameDescBob + invalidPhoneDesc + emailDescBob + addressDescBob, domain.MessagePhoneConstraints},
			{"email", nameDescBob + phoneDescBob + invalidEmailDesc + addressDescBob, domain.MessageEmailConstraints},
			{"address", nameDescBob + phoneDescBob + emailDescBob + invalidAddressDesc, domain.MessageAddressConstraints},
			{"stage", nameDescBob + phoneDescBob + emailDescBob + addressDescBob + invalidStageDesc, domain.MessageStageConstraints},
			{"tag", nameDescBob + phoneDescBob + emailDescBob + addressDescBob + invalidTagDesc, domain.MessageTagConstraints},
			{"first invalid value reported", invalidNameDesc + phoneDescBob + emailDescBob + invalidAddressDesc, domain.MessageNameConstraints},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assertParseFailure(t, "add"+tt.input, tt.message)
			})
		}
	})
}

func TestParseEdit(t *testing.T) {
	t.Run("missing parts", func(t *testing.T) {
		assertParseFailure(t, "edit"+nameDescAmy, formatError(commands.UsageEdit))
		assertParseFailure(t, "edit 1", commands.MessageNotEdited)
		assertParseFailure(t, "edit", formatError(commands.UsageEdit))
	})

	t.Run("invalid preamble", func(t *testing.T) {
		assertParseFailure(t, "edit -5"+nameDescAmy, formatError(commands.UsageEdit))
		assertParseFailure(t, "edit 0"+nameDescAmy, formatError(commands.UsageEdit))
		assertParseFailure(t, "edit 1 some random string", formatError(commands.UsageEdit))
		assertParseFailure(t, "edit 1 i/ string", formatError(commands.UsageEdit))
	})

	t.Run("invalid values", func(t *testing.T) {
		assertParseFailure(t, "edit 1"+invalidNameDesc, domain.MessageNameConstraints)
		assertParseFailure(t, "edit 1"+invalidPhoneDesc, domain.MessagePhoneConstraints)
		assertParseFailure(t, "edit 1"+invalidEmailDesc, domain.MessageEmailConstraints)
		assertParseFailure(t, "edit 1"+invalidAddressDesc, domain.MessageAddressConstraints)
		assertParseFailure(t, "edit 1"+invalidStageDesc, domain.MessageStageConstraints)
		assertParseFailure(t, "edit 1"+invalidTagDesc, domain.MessageTagConstraints)
		// a bare t/ among other tags is an invalid tag, not a reset
		assertParseFailure(t, "edit 1"+tagDescFriend+" t/", domain.MessageTagConstraints)
	})

	t.Run("all fields specified", func(t *testing.T) {
		input := "edit 2" + phoneDescBob + tagDescHusband + emailDescAmy + addressDescAmy + nameDescAmy +
			stageDescBob + tagDescFriend
		d := testutil.NewEditDescriptorBuilder().WithName(testutil.ValidNameAmy).
			WithPhone(testutil.ValidPhoneBob).WithEmail(testutil.ValidEmailAmy).
			WithAddress(testutil.ValidAddressAmy).WithStage(domain.StageInterview).
			WithTags(testutil.ValidTagHusband, testutil.ValidTagFriend).Build()
		assertParseSuccess(t, input, commands.NewEditCommand(testutil.IndexSecondCandidate, d))
	})

	t.Run("one field specified", func(t *testing.T) {
		d := testutil.NewEditDescriptorBuilder().WithPhone(testutil.ValidPhoneAmy).Build()
		assertParseSuccess(t, "edit 3"+phoneDescAmy, commands.NewEditCommand(testutil.IndexThirdCandidate, d))
	})

	t.Run("reset tags", func(t *testing.T) {
		d := testutil.NewEditDescriptorBuilder().WithTags().Build()
		assertParseSuccess(t, "edit 3 t/", commands.NewEditCommand(testutil.IndexThirdCandidate, d))
	})

	t.Run("repeated single-valued fields", func(t *testing.T) {
		assertParseFailure(t, "edit 1"+phoneDescAmy+phoneDescBob, commands.MessageDuplicateFields+"p/")
	})
}

func TestParseDelete(t *testing.T) {
	assertParseSuccess(t, "delete 1", commands.NewDeleteCommand(testutil.IndexFirstCandidate))
	assertParseSuccess(t, "delete   2  ", commands.NewDeleteCommand(testutil.IndexSecondCandidate))

	for _, bad := range []string{"delete", "delete a", "delete 0", "delete -1", "delete +1", "delete 1 2"} {
		t.Run(bad, func(t *testing.T) {
			assertParseFailure(t, bad, formatError(commands.UsageDelete))
		})
	}
}

func TestParseClear(t *testing.T) {
	tests := []struct {
		input    string
		expected commands.Command
	}{
		{"clear all", commands.NewClearAllCommand()},
		{"clear ALL", commands.NewClearAllCommand()},
		{"clear   All  ", commands.NewClearAllCommand()},
		{"clear Applied", commands.NewClearStageCommand(domain.StageApplied)},
		{"clear interview", commands.NewClearStageCommand(domain.StageInterview)},
		{"clear OFFER", commands.NewClearStageCommand(domain.StageOffer)},
		{"clear Rejected", commands.NewClearStageCommand(domain.StageRejected)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertParseSuccess(t, tt.input, tt.expected)
		})
	}

	for _, bad := range []string{"clear", "clear   ", "clear everything", "clear Applied Offer", "clear Hired"} {
		t.Run(bad, func(t *testing.T) {
			assertParseFailure(t, bad, formatError(commands.UsageClear))
		})
	}
}

func TestParseFind(t *testing.T) {
	expected := commands.NewFindCommand(domain.NameContainsKeywords{Keywords: []string{"Alice", "Bob"}})
	assertParseSuccess(t, "find Alice Bob", expected)
	assertParseSuccess(t, "find \n Alice \n \t Bob  \t", expected)
	assertParseFailure(t, "find     ", formatError(commands.UsageFind))
}

func TestParseTagCommands(t *testing.T) {
	assertParseSuccess(t, "addtag backend frontend",
		commands.NewAddTagCommand(testutil.MustTags("backend", "frontend")))
	assertParseFailure(t, "addtag", formatError(commands.UsageAddTag))
	assertParseFailure(t, "addtag good bad*", domain.MessageTagConstraints)

	assertParseSuccess(t, "deletetag backend", commands.NewDeleteTagCommand(testutil.MustTag("backend")))
	assertParseFailure(t, "deletetag", formatError(commands.UsageDeleteTag))
	assertParseFailure(t, "deletetag a b", formatError(commands.UsageDeleteTag))
	assertParseFailure(t, "deletetag bad*", domain.MessageTagConstraints)
}

func TestParseStage(t *testing.T) {
	assertParseSuccess(t, "stage 1 interview",
		commands.NewStageCommand(testutil.IndexFirstCandidate, domain.StageInterview))
	assertParseFailure(t, "stage 1", formatError(commands.UsageStage))
	assertParseFailure(t, "stage 0 Offer", formatError(commands.UsageStage))
	assertParseFailure(t, "stage Offer 1", formatError(commands.UsageStage))
	assertParseFailure(t, "stage 1 Hired", domain.MessageStageConstraints)
}
