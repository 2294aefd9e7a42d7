// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - ModelManager: in-memory candidate book, filtered view and preferences
//   - LogicManager: parses and runs commands, persisting changes
//   - ConfigService: typed application configuration over a ConfigStore
//
// Services are pure Go with no CGO or external dependencies.
package services
