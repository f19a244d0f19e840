// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: Document and image persistence plus the search mirror
//   - FileStore: Upload and export trees on disk
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Recognizer: Maps an image to detected text spans. Without it,
//     ingestion stores images with empty OCR text.
//   - WordExporter, ExcelExporter: Produce per-document artifacts. Without
//     them, export paths stay unset.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
