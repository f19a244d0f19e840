// Package domain defines the core business entities for the document manager.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One ingestion batch's record (title, type, combined OCR text, export links)
//   - Image: One uploaded file belonging to exactly one Document
//   - DocType: The closed classification taxonomy
//   - TypeFilter: An optional doc-type restriction for queries
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
