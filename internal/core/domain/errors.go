package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexUnavailable indicates the full-text mirror is missing or
	// broken. Callers degrade to the substring scan path; this error
	// never propagates out of the storage layer.
	ErrIndexUnavailable = errors.New("search index unavailable")

	// ErrRecognizerUnavailable indicates no OCR backend is configured.
	// Ingestion still persists images, with empty recognized text.
	ErrRecognizerUnavailable = errors.New("recognizer unavailable")

	// ErrExporterUnavailable indicates no exporter is configured.
	ErrExporterUnavailable = errors.New("exporter unavailable")

	// ErrNoImages indicates an ingestion request carried no files.
	ErrNoImages = errors.New("at least one image is required")
)
