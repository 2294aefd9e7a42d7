package cli

import (
	"bytes"
	"strings"
	"testing"
)

// resetFlags restores every package-level flag variable, since cobra keeps
// parsed values between Execute calls.
func resetFlags() {
	configDir = ""
	dataPath = ""
	verbose = false
	ephemeral = false
	listJSON = false
	listStage = ""
	listTag = ""
}

// execute runs the root command with args, feeding stdin, and returns
// everything written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
