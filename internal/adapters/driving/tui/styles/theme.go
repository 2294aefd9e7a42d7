// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/allanrobert0203/tp/internal/core/domain"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// TagBackground fills tag labels.
	TagBackground lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:       lipgloss.Color("#7C3AED"), // Purple
		Secondary:     lipgloss.Color("#06B6D4"), // Cyan
		Foreground:    lipgloss.Color("#CDD6F4"), // Light gray
		Muted:         lipgloss.Color("#6C7086"), // Medium gray
		Success:       lipgloss.Color("#A6E3A1"), // Green
		Warning:       lipgloss.Color("#F9E2AF"), // Yellow
		Error:         lipgloss.Color("#F38BA8"), // Red
		Border:        lipgloss.Color("#45475A"), // Border gray
		TagBackground: lipgloss.Color("#3B4261"), // Slate
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// CommandBox frames the command input.
	CommandBox lipgloss.Style

	// CommandBoxError frames the command input after a failed command.
	CommandBoxError lipgloss.Style

	// ResultBox frames command feedback.
	ResultBox lipgloss.Style

	// StatusBar style for the footer.
	StatusBar lipgloss.Style

	// Tag style for a single tag label.
	Tag lipgloss.Style

	// Help style for the help overlay.
	Help lipgloss.Style

	stages map[domain.Stage]lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		CommandBox: box,

		CommandBoxError: box.BorderForeground(theme.Error),

		ResultBox: box,

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Tag: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.TagBackground).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),

		stages: map[domain.Stage]lipgloss.Style{
			domain.StageApplied:   lipgloss.NewStyle().Foreground(theme.Secondary),
			domain.StageInterview: lipgloss.NewStyle().Foreground(theme.Warning),
			domain.StageOffer:     lipgloss.NewStyle().Foreground(theme.Success),
			domain.StageRejected:  lipgloss.NewStyle().Foreground(theme.Error),
		},
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Stage returns the style for a pipeline stage.
func (s *Styles) Stage(stage domain.Stage) lipgloss.Style {
	if st, ok := s.stages[stage]; ok {
		return st
	}
	return s.Normal
}
