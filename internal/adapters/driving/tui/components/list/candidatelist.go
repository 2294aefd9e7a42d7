// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/styles"
	"github.com/allanrobert0203/tp/internal/core/domain"
)

// cardHeight is the number of lines one candidate occupies, separator included.
const cardHeight = 6

// CandidateList displays the filtered candidates as numbered cards.
// The numbers are the one-based indexes commands refer to.
type CandidateList struct {
	candidates []domain.Candidate
	offset     int
	styles     *styles.Styles
	width      int
	height     int
}

// NewCandidateList creates a new candidate list component.
func NewCandidateList(s *styles.Styles) *CandidateList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CandidateList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the candidate list.
func (l *CandidateList) Init() tea.Cmd {
	return nil
}

// Update is a no-op; scrolling is driven by the app's keymap.
func (l *CandidateList) Update(_ tea.Msg) (*CandidateList, tea.Cmd) {
	return l, nil
}

// View renders the visible cards.
func (l *CandidateList) View() string {
	if len(l.candidates) == 0 {
		return l.styles.Muted.Render("No candidates to show")
	}

	end := l.offset + l.PageSize()
	if end > len(l.candidates) {
		end = len(l.candidates)
	}

	cards := make([]string, 0, end-l.offset+1)
	for i := l.offset; i < end; i++ {
		cards = append(cards, l.renderCard(i, l.candidates[i]))
	}
	if end < len(l.candidates) {
		cards = append(cards, l.styles.Muted.Render(
			fmt.Sprintf("... %d more (pgdn)", len(l.candidates)-end)))
	}
	return strings.Join(cards, "\n")
}

func (l *CandidateList) renderCard(i int, c domain.Candidate) string {
	title := l.styles.Title.Render(fmt.Sprintf("%d. %s", i+1, c.Name())) + "  " +
		l.styles.Stage(c.Stage()).Render(string(c.Stage()))

	tags := make([]string, 0, len(c.Tags()))
	for _, t := range c.Tags() {
		tags = append(tags, l.styles.Tag.Render(t.Name()))
	}

	lines := []string{
		title,
		"   " + strings.Join(tags, " "),
		"   " + l.styles.Normal.Render(truncate(c.Phone().String(), l.width-3)),
		"   " + l.styles.Normal.Render(truncate(c.Address().String(), l.width-3)),
		"   " + l.styles.Normal.Render(truncate(c.Email().String(), l.width-3)),
		"",
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, limit int) string {
	if limit < 4 || len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

// SetCandidates replaces the displayed candidates, keeping the scroll
// position where possible.
func (l *CandidateList) SetCandidates(candidates []domain.Candidate) {
	l.candidates = candidates
	l.clamp()
}

// Candidates returns the displayed candidates.
func (l *CandidateList) Candidates() []domain.Candidate {
	return l.candidates
}

// Count returns the number of candidates.
func (l *CandidateList) Count() int {
	return len(l.candidates)
}

// IsEmpty reports whether there is nothing to show.
func (l *CandidateList) IsEmpty() bool {
	return len(l.candidates) == 0
}

// Offset returns the index of the first visible candidate.
func (l *CandidateList) Offset() int {
	return l.offset
}

// PageSize returns how many cards fit in the current height.
func (l *CandidateList) PageSize() int {
	n := l.height / cardHeight
	if n < 1 {
		return 1
	}
	return n
}

// PageUp scrolls up one page.
func (l *CandidateList) PageUp() {
	l.offset -= l.PageSize()
	l.clamp()
}

// PageDown scrolls down one page.
func (l *CandidateList) PageDown() {
	l.offset += l.PageSize()
	l.clamp()
}

func (l *CandidateList) clamp() {
	maxOffset := len(l.candidates) - l.PageSize()
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// SetDimensions sets the available area.
func (l *CandidateList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
	l.clamp()
}

// Width returns the current width.
func (l *CandidateList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *CandidateList) Height() int {
	return l.height
}
