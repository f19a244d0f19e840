package driving

import (
	"context"

	"github.com/Quan631/PBL-6/internal/core/domain"
)

// SearchService answers document and image queries, using the
// full-text mirror when available and the substring scan otherwise.
// The two paths are interchangeable from the caller's perspective;
// only recall differs, visible through the Degraded flag.
type SearchService interface {
	// SearchDocuments rejects blank queries and otherwise returns
	// matching documents, newest first.
	SearchDocuments(ctx context.Context, query string, filter domain.TypeFilter, limit int) (domain.DocumentSearchResult, error)

	// SearchImages matches image filenames and per-image OCR text.
	SearchImages(ctx context.Context, query string, limit int) (domain.ImageSearchResult, error)
}
