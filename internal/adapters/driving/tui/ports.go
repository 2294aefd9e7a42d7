// Package tui provides an interactive terminal user interface for Findr.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/allanrobert0203/tp/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Logic runs commands and exposes the state to display.
	Logic driving.Logic

	// Changes signals that the data file was modified outside the app.
	// It is optional; a nil channel disables reloading.
	Changes <-chan struct{}
}

// NewPorts creates a new Ports aggregate.
func NewPorts(logic driving.Logic, changes <-chan struct{}) *Ports {
	return &Ports{
		Logic:   logic,
		Changes: changes,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Logic == nil {
		return ErrMissingLogic
	}
	return nil
}
