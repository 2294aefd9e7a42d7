package commands_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/testutil"
)

func TestFindCommand(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []domain.Candidate
	}{
		{"no match", []string{"Zelda"}, nil},
		{"single keyword", []string{testutil.KeywordMatchingMeier},
			[]domain.Candidate{testutil.Benson(), testutil.Daniel()}},
		{"multiple keywords", []string{"Kurz", "Elle", "Kunz"},
			[]domain.Candidate{testutil.Carl(), testutil.Elle(), testutil.Fiona()}},
		{"case insensitive", []string{"aLiCe"}, []domain.Candidate{testutil.Alice()}},
		{"partial word does not match", []string{"Ali"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := typicalModel(t)
			cmd := commands.NewFindCommand(domain.NameContainsKeywords{Keywords: tt.keywords})

			result, err := cmd.Execute(model)
			require.NoError(t, err)

			assert.Equal(t, fmt.Sprintf(commands.MessageCandidatesListedOverview, len(tt.want)), result.Feedback)
			assertSameCandidates(t, tt.want, model.FilteredCandidateList())
			assert.Len(t, model.Findr().Candidates(), len(testutil.TypicalCandidates()))
		})
	}
}

func TestFindCommand_Equality(t *testing.T) {
	first := commands.NewFindCommand(domain.NameContainsKeywords{Keywords: []string{"first"}})

	assert.Equal(t, first, commands.NewFindCommand(domain.NameContainsKeywords{Keywords: []string{"first"}}))
	assert.NotEqual(t, first, commands.NewFindCommand(domain.NameContainsKeywords{Keywords: []string{"second"}}))
}
