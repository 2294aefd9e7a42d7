// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/styles"
)

// maxHistory bounds the number of remembered commands.
const maxHistory = 100

// CommandBox is the single-line box commands are typed into.
// It remembers submitted commands and marks itself when the last one failed.
type CommandBox struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int

	history []string
	// pos indexes history while browsing; len(history) means not browsing.
	pos   int
	draft string

	failed bool
}

// NewCommandBox creates a new command box component.
func NewCommandBox(s *styles.Styles) *CommandBox {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter command here..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	return &CommandBox{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the command box.
func (c *CommandBox) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. Editing the text clears the failure mark.
func (c *CommandBox) Update(msg tea.Msg) (*CommandBox, tea.Cmd) {
	before := c.textinput.Value()
	var cmd tea.Cmd
	c.textinput, cmd = c.textinput.Update(msg)
	if c.textinput.Value() != before {
		c.failed = false
	}
	return c, cmd
}

// View renders the command box.
func (c *CommandBox) View() string {
	box := c.styles.CommandBox
	if c.failed {
		box = c.styles.CommandBoxError
	}
	return box.Width(c.width - 2).Render(c.textinput.View())
}

// Submit returns the typed text and records it in history.
// On success the box is cleared; on failure the caller should call
// MarkFailed so the text stays for correction.
func (c *CommandBox) Submit() string {
	text := c.textinput.Value()
	if text != "" && (len(c.history) == 0 || c.history[len(c.history)-1] != text) {
		c.history = append(c.history, text)
		if len(c.history) > maxHistory {
			c.history = c.history[len(c.history)-maxHistory:]
		}
	}
	c.pos = len(c.history)
	c.draft = ""
	return text
}

// MarkSucceeded clears the box after a command ran.
func (c *CommandBox) MarkSucceeded() {
	c.textinput.Reset()
	c.failed = false
}

// MarkFailed keeps the text and highlights the box.
func (c *CommandBox) MarkFailed() {
	c.failed = true
}

// Failed reports whether the last submitted command was rejected.
func (c *CommandBox) Failed() bool {
	return c.failed
}

// HistoryPrev replaces the text with the previous history entry.
func (c *CommandBox) HistoryPrev() {
	if c.pos == 0 {
		return
	}
	if c.pos == len(c.history) {
		c.draft = c.textinput.Value()
	}
	c.pos--
	c.setText(c.history[c.pos])
}

// HistoryNext moves towards the most recent entry, restoring the draft
// once history is exhausted.
func (c *CommandBox) HistoryNext() {
	if c.pos >= len(c.history) {
		return
	}
	c.pos++
	if c.pos == len(c.history) {
		c.setText(c.draft)
		return
	}
	c.setText(c.history[c.pos])
}

// History returns a copy of the remembered commands, oldest first.
func (c *CommandBox) History() []string {
	return append([]string(nil), c.history...)
}

func (c *CommandBox) setText(text string) {
	c.textinput.SetValue(text)
	c.textinput.CursorEnd()
	c.failed = false
}

// Value returns the current input value.
func (c *CommandBox) Value() string {
	return c.textinput.Value()
}

// SetValue sets the input value.
func (c *CommandBox) SetValue(value string) {
	c.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (c *CommandBox) Focus() tea.Cmd {
	return c.textinput.Focus()
}

// Blur removes focus from the input.
func (c *CommandBox) Blur() {
	c.textinput.Blur()
}

// Focused returns whether the input is focused.
func (c *CommandBox) Focused() bool {
	return c.textinput.Focused()
}

// SetWidth sets the outer width of the box.
func (c *CommandBox) SetWidth(width int) {
	c.width = width
	// border, padding and prompt
	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	c.textinput.Width = inputWidth
}

// Width returns the current width.
func (c *CommandBox) Width() int {
	return c.width
}

// Reset clears the input and the failure mark.
func (c *CommandBox) Reset() {
	c.textinput.Reset()
	c.failed = false
}
