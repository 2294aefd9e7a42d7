// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/keymap"
	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/styles"
)

// Bar shows the data file location, list counts and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	path     string
	shown    int
	total    int
	reloaded bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the bar is driven through its setters.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	parts := []string{s.path}
	if s.shown == s.total {
		parts = append(parts, fmt.Sprintf("%d candidates", s.total))
	} else {
		parts = append(parts, fmt.Sprintf("%d of %d candidates", s.shown, s.total))
	}
	if s.reloaded {
		parts = append(parts, "reloaded from disk")
	}
	return s.styles.Muted.Render(strings.Join(parts, " | "))
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hint(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetPath sets the data file location shown on the left.
func (s *Bar) SetPath(path string) {
	s.path = path
}

// Path returns the displayed data file location.
func (s *Bar) Path() string {
	return s.path
}

// SetCounts records how many candidates are shown out of the total.
func (s *Bar) SetCounts(shown, total int) {
	s.shown = shown
	s.total = total
}

// Counts returns the shown and total candidate counts.
func (s *Bar) Counts() (shown, total int) {
	return s.shown, s.total
}

// SetReloaded marks whether the last refresh came from an external change.
func (s *Bar) SetReloaded(reloaded bool) {
	s.reloaded = reloaded
}

// Reloaded reports whether the reload marker is set.
func (s *Bar) Reloaded() bool {
	return s.reloaded
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
