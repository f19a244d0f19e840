// Package sqlite provides the SQLite-backed implementation of the
// DocumentStore port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. The schema is
// managed through versioned migrations in the migrations/ directory.
//
// # Search Mirror
//
// An FTS5 virtual table mirrors document_id, title, doc_type
// and ocr_text for token search. The mirror is derived state: it is
// rebuildable from the documents table, its maintenance failures are
// swallowed, and every query degrades to a LIKE scan when it is missing
// or errors. Absence of FTS5 must never block a store operation.
//
// # Thread Safety
//
// All operations are safe for concurrent use through database-level
// locking in WAL mode. The store is single-writer by design.
package sqlite
