package driven

import (
	"context"

	"github.com/Quan631/PBL-6/internal/core/domain"
)

// DocumentStore persists document and image records and keeps the
// full-text mirror in lockstep. Backed by SQLite.
type DocumentStore interface {
	// UpsertDocument inserts or fully replaces a document keyed by ID
	// and updates the mirrored index entry (delete then reinsert) in
	// the same logical operation. The returned flag reports whether
	// the mirror was updated; an unavailable mirror never fails the
	// document write.
	UpsertDocument(ctx context.Context, doc *domain.Document) (indexed bool, err error)

	// InsertImage appends a new image row. Existing rows are never
	// overwritten.
	InsertImage(ctx context.Context, img *domain.Image) error

	// UpdateImageOCR sets the recognized text on the unique image
	// matching (documentID, storedPath). A missing match is a no-op,
	// not an error.
	UpdateImageOCR(ctx context.Context, documentID, storedPath, text string) error

	// GetDocuments returns documents ordered by creation time
	// descending, optionally restricted by filter.
	GetDocuments(ctx context.Context, filter domain.TypeFilter, limit, offset int) ([]domain.Document, error)

	// GetDocument retrieves one document or domain.ErrNotFound.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetImagesByDoc returns a document's images in insertion order.
	GetImagesByDoc(ctx context.Context, documentID string) ([]domain.Image, error)

	// SearchDocuments matches query against the mirror (title, type,
	// OCR text) joined back to authoritative rows; when the mirror is
	// unavailable or errors it degrades to a substring scan over
	// id, title and OCR text. Both paths share ordering and filter
	// semantics.
	SearchDocuments(ctx context.Context, query string, filter domain.TypeFilter, limit int) (domain.DocumentSearchResult, error)

	// SearchImages matches query against image filenames and OCR text.
	SearchImages(ctx context.Context, query string, limit int) (domain.ImageSearchResult, error)

	// StatsCountByType returns counts grouped by type, missing types
	// reported as "Unknown", ordered by count descending.
	StatsCountByType(ctx context.Context) ([]domain.TypeCount, error)

	// Reset drops all rows and recreates the schema. Image files on
	// disk are untouched.
	Reset(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}
