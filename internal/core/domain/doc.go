// Package domain defines the core business entities for Findr.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Candidate: A tracked person with contact fields, a Stage and Tags
//   - Tag: A label attachable to candidates
//   - Stage: The recruitment pipeline position of a candidate
//   - UniqueList: An ordered sequence that rejects identity duplicates
//   - Findr: The aggregate owning the candidate and tag lists
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
