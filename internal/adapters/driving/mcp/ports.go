package mcp

import (
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Logic runs commands and exposes the candidate book.
	Logic driving.Logic
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Logic == nil {
		return ErrMissingLogic
	}
	return nil
}
