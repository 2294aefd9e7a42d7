// Package memory provides in-memory implementations of the driven storage
// ports. They back the --ephemeral mode and the "memory" storage backend,
// and serve as fakes in tests. Nothing survives the process.
package memory
