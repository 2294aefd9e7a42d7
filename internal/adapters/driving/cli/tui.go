package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/allanrobert0203/tp/internal/adapters/driving/tui"
	"github.com/allanrobert0203/tp/internal/app"
	"github.com/allanrobert0203/tp/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Findr.

Type commands into the command box and press Enter to run them. The
candidate list below shows the current view; indexes in commands refer
to it.

Controls:
  Enter      - Run command
  ↑/↓        - Command history
  PgUp/PgDn  - Scroll candidates
  Esc        - Clear input / close help
  F1         - Toggle help
  Ctrl+C     - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panicked: %v", r)
		}
	}()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(cmd, a)

	restore, err := redirectLogs(a.LogPath())
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model, err := tui.NewApp(tui.NewPorts(a.Logic, watchDataFile(ctx, a)))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	model.WithContext(ctx)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchDataFile starts the file watcher, if the backend has one, and
// returns the channel it signals on. The watcher stops when ctx ends.
func watchDataFile(ctx context.Context, a *app.App) <-chan struct{} {
	if a.Watcher == nil {
		return nil
	}
	changes := make(chan struct{}, 1)
	go func() {
		err := a.Watcher.Watch(ctx, a.Storage.Path(), func() {
			select {
			case changes <- struct{}{}:
			default:
				// a reload is already pending
			}
		})
		if err != nil {
			logger.Warn("file watcher stopped: %v", err)
		}
	}()
	return changes
}

// redirectLogs sends log output to path while the UI owns the terminal.
func redirectLogs(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
