// Package domain defines the core entities for psychmatch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A stored key-value body with its id/created/modified envelope
//   - View: The map/reduce capability a materialized view is built from
//   - Cursor: A snapshot of a view aggregate with deferred filtering
//   - MatchRecord, Conversation, User: Typed results of the built-in views
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
