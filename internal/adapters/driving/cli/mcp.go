package cli

import (
	"github.com/spf13/cobra"

	"github.com/allanrobert0203/tp/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can run Findr
commands and read the candidate book.

The server communicates over stdio using JSON-RPC. Changes are saved to
the data file exactly as if typed into the terminal UI.

Tools:
  execute_command  run any Findr command
  list_candidates  list candidates, optionally by stage or tag

Resources:
  findr://candidates
  findr://tags

Example client configuration:
  {
    "mcpServers": {
      "findr": {
        "command": "/path/to/findr",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(cmd, a)

	server, err := mcp.NewServer(&mcp.Ports{Logic: a.Logic})
	if err != nil {
		return err
	}
	return server.Run(cmd.Context())
}
