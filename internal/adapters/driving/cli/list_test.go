package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/record"
	"github.com/allanrobert0203/tp/internal/core/domain"
)

func TestListCmd_Flags(t *testing.T) {
	for _, name := range []string{"json", "stage", "tag"} {
		assert.NotNil(t, listCmd.Flags().Lookup(name), "missing --%s", name)
	}
}

func TestListCmd_Table(t *testing.T) {
	out, err := execute(t, "", "--config-dir", t.TempDir(), "--ephemeral", "list")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(domain.SampleFindr().Candidates()))
	assert.True(t, strings.HasPrefix(lines[0], "1. Alex Yeoh; Phone: "))
}

func TestListCmd_JSON(t *testing.T) {
	out, err := execute(t, "", "--config-dir", t.TempDir(), "--ephemeral", "list", "--json")
	require.NoError(t, err)

	var got []record.Candidate
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(domain.SampleFindr().Candidates()))

	first, err := got[0].ToDomain()
	require.NoError(t, err)
	assert.True(t, first.Equal(domain.SampleFindr().Candidates()[0]))
}

func TestListCmd_Filters(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"stage", []string{"--stage", "interview"}, []string{"Bernice Yu", "Roy Balakrishnan"}},
		{"tag", []string{"--tag", "backend"}, []string{"Alex Yeoh", "David Li"}},
		{"stage and tag", []string{"--stage", "Interview", "--tag", "frontend"}, []string{"Bernice Yu"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config-dir", t.TempDir(), "--ephemeral", "list"}, tt.args...)
			out, err := execute(t, "", args...)

			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, len(tt.want))
			for i, name := range tt.want {
				assert.Contains(t, lines[i], name)
			}
		})
	}
}

func TestListCmd_NumbersFollowFullList(t *testing.T) {
	out, err := execute(t, "", "--config-dir", t.TempDir(), "--ephemeral", "list", "--stage", "Offer")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "3. Charlotte Oliveiro"))
}

func TestListCmd_NoMatches(t *testing.T) {
	out, err := execute(t, "", "--config-dir", t.TempDir(), "--ephemeral", "list", "--tag", "nobody")

	require.NoError(t, err)
	assert.Contains(t, out, "No candidates found.")
}

func TestListCmd_InvalidFilters(t *testing.T) {
	_, err := execute(t, "", "--config-dir", t.TempDir(), "--ephemeral", "list", "--stage", "Hired")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "", "--config-dir", t.TempDir(), "--ephemeral", "list", "--tag", "not a tag")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
