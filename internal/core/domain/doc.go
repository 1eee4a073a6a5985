// Package domain defines the core business entities for the ClinicFlow
// search engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A searchable clinic entity (tagged union over EntityType)
//   - SearchOptions: Query configuration (filters, sorting, limit)
//   - SearchResult: A single ranked hit returned to the caller
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
