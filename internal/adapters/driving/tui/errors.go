package tui

import "errors"

// ErrMissingLogic is returned when the logic port is not provided.
var ErrMissingLogic = errors.New("tui: logic is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
