// Package sqlite stores the candidate book in a local SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Candidates, tags and the links between them live in three
// tables; list order is kept in a position column so a load returns the
// candidate book exactly as it was saved.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; applied versions are recorded in schema_migrations.
//
// # Consistency
//
// Save replaces the whole candidate book inside one transaction. Load runs
// the same validation as the JSON backend, so a database edited by hand
// cannot produce duplicate or dangling data.
package sqlite
