package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/components/input"
	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/components/list"
	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/components/status"
	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/keymap"
	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/messages"
	"github.com/allanrobert0203/tp/internal/adapters/driving/tui/styles"
	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/logger"
)

// Layout constants, in terminal rows.
const (
	titleHeight      = 1
	commandBoxHeight = 3
	statusBarHeight  = 1
	maxResultLines   = 4
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Commands run synchronously inside Update, so the model is only ever
// touched from the Bubbletea goroutine.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	commandBox *input.CommandBox
	candidates *list.CandidateList
	statusBar  *status.Bar

	// help is the scrollable help overlay.
	help     viewport.Model
	showHelp bool

	// feedback is the text of the result display.
	feedback    string
	feedbackErr bool

	unsubscribe func()
	quitting    bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		commandBox: input.NewCommandBox(s),
		candidates: list.NewCandidateList(s),
		statusBar:  status.NewBar(s, km),
		help:       viewport.New(0, 0),
	}
	a.statusBar.SetPath(ports.Logic.FindrFilePath())
	a.unsubscribe = ports.Logic.Subscribe(a.refresh)
	a.refresh()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("Findr"),
		a.commandBox.Init(),
		waitForChange(a.ports.Changes),
	)
}

// waitForChange blocks on the watcher channel and turns one signal into a
// DataFileChanged message. It never touches the model.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.DataFileChanged{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.CommandExecuted:
		return a, a.handleCommandExecuted(msg)

	case messages.DataFileChanged:
		return a, a.reload()

	case messages.ReloadCompleted:
		a.handleReload(msg)
		return a, waitForChange(a.ports.Changes)
	}

	var cmd tea.Cmd
	a.commandBox, cmd = a.commandBox.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.Quit) {
		return a, a.exit()
	}

	if a.showHelp {
		if key.Matches(msg, a.keymap.Close) || key.Matches(msg, a.keymap.Help) {
			a.showHelp = false
			return a, nil
		}
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keymap.Help):
		a.openHelp()
		return a, nil
	case key.Matches(msg, a.keymap.Submit):
		return a, a.submit()
	case key.Matches(msg, a.keymap.Close):
		a.commandBox.Reset()
		return a, nil
	case key.Matches(msg, a.keymap.HistoryPrev):
		a.commandBox.HistoryPrev()
		return a, nil
	case key.Matches(msg, a.keymap.HistoryNext):
		a.commandBox.HistoryNext()
		return a, nil
	case key.Matches(msg, a.keymap.ScrollUp):
		a.candidates.PageUp()
		return a, nil
	case key.Matches(msg, a.keymap.ScrollDown):
		a.candidates.PageDown()
		return a, nil
	}

	var cmd tea.Cmd
	a.commandBox, cmd = a.commandBox.Update(msg)
	return a, cmd
}

// submit runs the text in the command box and reports the outcome as a
// CommandExecuted message.
func (a *App) submit() tea.Cmd {
	text := a.commandBox.Submit()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	result, err := a.ports.Logic.Execute(a.ctx, text)
	msg := messages.CommandExecuted{Input: text, Result: result, Err: err}
	return func() tea.Msg { return msg }
}

// reload re-reads the data file and reports the outcome as a
// ReloadCompleted message.
func (a *App) reload() tea.Cmd {
	changed, err := a.ports.Logic.Reload(a.ctx)
	msg := messages.ReloadCompleted{Changed: changed, Err: err}
	return func() tea.Msg { return msg }
}

func (a *App) handleCommandExecuted(msg messages.CommandExecuted) tea.Cmd {
	if msg.Failed() {
		logger.Debug("command %q failed: %v", msg.Input, msg.Err)
		a.commandBox.MarkFailed()
		a.setFeedback(msg.Err.Error(), true)
		return nil
	}

	a.commandBox.MarkSucceeded()
	a.statusBar.SetReloaded(false)
	a.setFeedback(msg.Result.Feedback, false)
	a.refresh()

	if msg.Result.ShowHelp {
		a.openHelp()
	}
	if msg.Result.Exit {
		return a.exit()
	}
	return nil
}

func (a *App) handleReload(msg messages.ReloadCompleted) {
	if msg.Err != nil {
		logger.Warn("reload failed: %v", msg.Err)
		a.setFeedback(fmt.Sprintf("Could not reload data file: %v", msg.Err), true)
		return
	}
	if msg.Changed {
		a.statusBar.SetReloaded(true)
		a.refresh()
	}
}

// exit records the terminal size for the next session and quits.
func (a *App) exit() tea.Cmd {
	if a.ready {
		settings := a.ports.Logic.GuiSettings()
		settings.WindowWidth = a.width
		settings.WindowHeight = a.height
		a.ports.Logic.SetGuiSettings(settings)
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.quitting = true
	return tea.Quit
}

// refresh pulls the displayed state from the logic port.
func (a *App) refresh() {
	shown := a.ports.Logic.FilteredCandidateList()
	a.candidates.SetCandidates(shown)
	a.statusBar.SetCounts(len(shown), len(a.ports.Logic.Findr().Candidates()))
}

func (a *App) setFeedback(text string, isErr bool) {
	a.feedback = text
	a.feedbackErr = isErr
	a.layout()
}

func (a *App) openHelp() {
	a.help.SetContent(a.helpContent())
	a.help.GotoTop()
	a.showHelp = true
}

func (a *App) helpContent() string {
	width := a.help.Width
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Findr commands"))
	b.WriteString("\n\n")
	for _, info := range commands.All() {
		b.WriteString(a.styles.Subtitle.Render(info.Word))
		b.WriteString("\n")
		b.WriteString(wrap.Render(info.Usage))
		b.WriteString("\n\n")
	}

	b.WriteString(a.styles.Title.Render("Keys"))
	b.WriteString("\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
		}
	}
	return b.String()
}

// layout sizes the components for the current terminal.
func (a *App) layout() {
	if !a.ready {
		return
	}
	a.commandBox.SetWidth(a.width)
	a.statusBar.SetWidth(a.width)

	listHeight := a.height - titleHeight - commandBoxHeight - a.resultHeight() - statusBarHeight
	if listHeight < 1 {
		listHeight = 1
	}
	a.candidates.SetDimensions(a.width, listHeight)

	frameX, frameY := a.styles.Help.GetFrameSize()
	a.help.Width = a.width - frameX
	a.help.Height = a.height - frameY - statusBarHeight
	if a.showHelp {
		a.help.SetContent(a.helpContent())
	}
}

// resultHeight is the height of the result display including its border.
func (a *App) resultHeight() int {
	lines := strings.Count(a.feedback, "\n") + 1
	if lines > maxResultLines {
		lines = maxResultLines
	}
	return lines + 2
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "Initialising..."
	}

	if a.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			a.styles.Help.Render(a.help.View()),
			a.styles.Muted.Render("esc: close help | ↑/↓: scroll"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Findr"),
		a.commandBox.View(),
		a.viewResult(),
		a.candidates.View(),
		a.statusBar.View(),
	)
}

func (a *App) viewResult() string {
	lines := strings.Split(a.feedback, "\n")
	if len(lines) > maxResultLines {
		lines = lines[:maxResultLines]
	}
	text := strings.Join(lines, "\n")
	if a.feedbackErr {
		text = a.styles.Error.Render(text)
	} else {
		text = a.styles.Normal.Render(text)
	}
	return a.styles.ResultBox.Width(a.width - 2).Render(text)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}

// Feedback returns the text of the result display and whether it is an error.
func (a *App) Feedback() (string, bool) {
	return a.feedback, a.feedbackErr
}

// ShowingHelp reports whether the help overlay is open.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Quitting reports whether the app has been asked to exit.
func (a *App) Quitting() bool {
	return a.quitting
}

// CommandText returns the current contents of the command box.
func (a *App) CommandText() string {
	return a.commandBox.Value()
}

// Width returns the terminal width.
func (a *App) Width() int {
	return a.width
}

// Height returns the terminal height.
func (a *App) Height() int {
	return a.height
}

// Ready reports whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}
