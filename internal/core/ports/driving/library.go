package driving

import (
	"context"

	"github.com/Quan631/PBL-6/internal/core/domain"
)

// DocumentDetail bundles a document with its ordered images for the
// detail view.
type DocumentDetail struct {
	Document domain.Document
	Images   []domain.Image
}

// LibraryService serves the read paths over persisted documents,
// bypassing the ingestion pipeline.
type LibraryService interface {
	// ListDocuments pages through documents, newest first, optionally
	// filtered by type.
	ListDocuments(ctx context.Context, filter domain.TypeFilter, limit, offset int) ([]domain.Document, error)

	// GetDocument retrieves one document or domain.ErrNotFound.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetDetail retrieves a document together with its images.
	GetDetail(ctx context.Context, id string) (*DocumentDetail, error)

	// Stats returns document counts grouped by type, descending.
	Stats(ctx context.Context) ([]domain.TypeCount, error)
}
