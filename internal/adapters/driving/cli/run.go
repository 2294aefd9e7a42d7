package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [arguments...]",
	Short: "Run a single command",
	Long: `Run one Findr command and print its result. The arguments are joined
with spaces and parsed exactly as if typed into the command box.

Put -- before the command if any argument starts with a dash.

Examples:
  findr run list
  findr run add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2
  findr run stage 1 Interview`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(cmd, a)

	result, err := a.Logic.Execute(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}
