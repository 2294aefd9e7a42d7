// Package mcp provides an MCP (Model Context Protocol) server adapter for Findr.
// It lets AI assistants run Findr commands and read the candidate book.
package mcp

import "errors"

// ErrMissingLogic is returned when the logic port is not provided.
var ErrMissingLogic = errors.New("mcp: logic is required")
