package services

import (
	"context"
	"strings"

	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/ports/driven"
	"github.com/Quan631/PBL-6/internal/core/ports/driving"
	"github.com/Quan631/PBL-6/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers document and image queries.
type SearchService struct {
	store driven.DocumentStore
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.DocumentStore) *SearchService {
	return &SearchService{store: store}
}

// SearchDocuments rejects blank queries and otherwise delegates to the
// store, which picks the index or scan path itself.
func (s *SearchService) SearchDocuments(ctx context.Context, query string, filter domain.TypeFilter, limit int) (domain.DocumentSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.DocumentSearchResult{}, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 50
	}

	result, err := s.store.SearchDocuments(ctx, query, filter, limit)
	if err != nil {
		return domain.DocumentSearchResult{}, err
	}
	if result.Degraded {
		logger.Debug("Document search for %q ran on the scan path", query)
	}
	return result, nil
}

// SearchImages matches image filenames and per-image OCR text.
func (s *SearchService) SearchImages(ctx context.Context, query string, limit int) (domain.ImageSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ImageSearchResult{}, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 50
	}
	return s.store.SearchImages(ctx, query, limit)
}
