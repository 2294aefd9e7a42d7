// Package cli provides the cobra command tree for the findr binary.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/allanrobert0203/tp/internal/app"
	"github.com/allanrobert0203/tp/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Global flags.
var (
	configDir string
	dataPath  string
	verbose   bool
	ephemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "findr",
	Short: "Track job candidates from the terminal",
	Long: `Findr keeps an address book of job candidates and the stage each one
has reached in the hiring pipeline.

Run without a subcommand to open the terminal UI, or, when input is not a
terminal, to read commands line by line from standard input.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runRoot,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configDir, "config-dir", "", "directory holding config.toml and data (default ~/.findr)")
	pf.StringVar(&dataPath, "data", "", "data file to use for this run instead of the one in preferences")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&ephemeral, "ephemeral", false, "keep candidates in memory only; nothing is written")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isInteractive(cmd) {
		return runTUI(cmd, args)
	}
	return runShell(cmd, args)
}

// isInteractive reports whether both ends of the command are terminals.
func isInteractive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// options builds app options from the flags. A relative --data path is
// taken from the working directory, not the config directory.
func options() app.Options {
	data := dataPath
	if data != "" {
		if abs, err := filepath.Abs(data); err == nil {
			data = abs
		}
	}
	return app.Options{
		ConfigDir: configDir,
		DataPath:  data,
		Ephemeral: ephemeral,
	}
}

// openApp wires the application for cmd. Callers must Close it.
func openApp(cmd *cobra.Command) (*app.App, error) {
	return app.Open(cmd.Context(), options())
}

// closeApp saves preferences, reporting failures without masking err.
func closeApp(cmd *cobra.Command, a *app.App) {
	if err := a.Close(); err != nil {
		logger.Warn("closing: %v", err)
		cmd.PrintErrf("warning: %v\n", err)
	}
}
