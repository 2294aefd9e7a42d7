package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanrobert0203/tp/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color("#7C3AED"), theme.Primary)
	assert.Equal(t, lipgloss.Color("#F38BA8"), theme.Error)
	assert.NotEmpty(t, theme.TagBackground)
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestStyles_StageColours(t *testing.T) {
	s := DefaultStyles()
	theme := s.Theme()

	tests := []struct {
		stage domain.Stage
		want  lipgloss.TerminalColor
	}{
		{domain.StageApplied, theme.Secondary},
		{domain.StageInterview, theme.Warning},
		{domain.StageOffer, theme.Success},
		{domain.StageRejected, theme.Error},
	}
	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, s.Stage(tt.stage).GetForeground())
		})
	}
}

func TestStyles_UnknownStageUsesNormal(t *testing.T) {
	s := DefaultStyles()
	assert.Equal(t, s.Normal.GetForeground(), s.Stage(domain.Stage("Hired")).GetForeground())
}

func TestStyles_CommandBoxErrorBorder(t *testing.T) {
	s := DefaultStyles()
	assert.Equal(t, s.Theme().Error, s.CommandBoxError.GetBorderTopForeground())
	assert.Equal(t, s.Theme().Border, s.CommandBox.GetBorderTopForeground())
}
