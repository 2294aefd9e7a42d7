package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Read commands line by line",
	Long: `Read Findr commands from standard input, one per line, printing the
result of each. Stops at end of input or after the exit command.

Example:
  printf 'list\nfind alice\n' | findr shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(cmd, a)

	return repl(cmd, a.Logic, cmd.InOrStdin(), cmd.OutOrStdout())
}

// repl runs each input line as a command. Command failures are printed and
// do not stop the loop.
func repl(cmd *cobra.Command, logic driving.Logic, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := logic.Execute(cmd.Context(), line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		printResult(out, result)
		if result.Exit {
			return nil
		}
	}
	return scanner.Err()
}

// printResult writes the feedback, and the command usage for help.
func printResult(out io.Writer, result driving.CommandResult) {
	fmt.Fprintln(out, result.Feedback)
	if result.ShowHelp {
		for _, info := range commands.All() {
			fmt.Fprintf(out, "\n%s\n", info.Usage)
		}
	}
}
