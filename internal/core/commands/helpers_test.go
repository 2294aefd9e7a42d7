package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/services"
	"github.com/allanrobert0203/tp/internal/testutil"
)

func newModel(t *testing.T, data domain.ReadOnlyFindr) *services.ModelManager {
	t.Helper()
	m, err := services.NewModelManager(data, domain.DefaultUserPrefs())
	require.NoError(t, err)
	return m
}

func typicalModel(t *testing.T) *services.ModelManager {
	t.Helper()
	return newModel(t, testutil.TypicalFindr())
}

// assertCommandSuccess runs cmd and checks the feedback and that the model
// ends up equal to expected.
func assertCommandSuccess(t *testing.T, cmd commands.Command, model, expected *services.ModelManager,
	feedback string) {
	t.Helper()
	result, err := cmd.Execute(model)
	require.NoError(t, err)
	assert.Equal(t, feedback, result.Feedback)
	assertSameState(t, expected, model)
}

// assertCommandFailure runs cmd and checks the error message and that the
// model is unchanged.
func assertCommandFailure(t *testing.T, cmd commands.Command, model *services.ModelManager, message string) {
	t.Helper()
	before := newModel(t, model.Findr())
	before.UpdateFilteredCandidateList(domain.PredicateFunc(func(c domain.Candidate) bool {
		for _, shown := range model.FilteredCandidateList() {
			if shown.Equal(c) {
				return true
			}
		}
		return false
	}))

	_, err := cmd.Execute(model)
	require.Error(t, err)
	var cerr *commands.CommandError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, message, err.Error())

	assertSameState(t, before, model)
}

func assertSameState(t *testing.T, expected, actual *services.ModelManager) {
	t.Helper()
	want, err := domain.NewFindrFrom(expected.Findr())
	require.NoError(t, err)
	got, err := domain.NewFindrFrom(actual.Findr())
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
	assertSameCandidates(t, expected.FilteredCandidateList(), actual.FilteredCandidateList())
}

func assertSameCandidates(t *testing.T, want, got []domain.Candidate) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "candidate %d: want %s, got %s", i, want[i], got[i])
	}
}

// showCandidateAtIndex narrows the filtered list to the candidate at index.
func showCandidateAtIndex(t *testing.T, model *services.ModelManager, index domain.Index) {
	t.Helper()
	shown := model.FilteredCandidateList()
	require.Less(t, index.ZeroBased(), len(shown))
	target := shown[index.ZeroBased()]
	model.UpdateFilteredCandidateList(domain.PredicateFunc(func(c domain.Candidate) bool {
		return c.IsSameCandidate(target)
	}))
	require.Len(t, model.FilteredCandidateList(), 1)
}

func showNoCandidate(t *testing.T, model *services.ModelManager) {
	t.Helper()
	model.UpdateFilteredCandidateList(domain.PredicateFunc(func(domain.Candidate) bool { return false }))
	require.Empty(t, model.FilteredCandidateList())
}
