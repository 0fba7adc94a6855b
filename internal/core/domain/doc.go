// Package domain defines the core business entities for iesedit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A parsed photometric file with metadata and grid data
//   - Metadata: Descriptive keyword fields with unset/empty distinction
//   - PhotometricData: The quantitative angle/intensity record
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
