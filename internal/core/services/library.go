package services

import (
	"context"

	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/ports/driven"
	"github.com/Quan631/PBL-6/internal/core/ports/driving"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService serves the read paths over persisted documents.
type LibraryService struct {
	store driven.DocumentStore
}

// NewLibraryService creates a new library service.
func NewLibraryService(store driven.DocumentStore) *LibraryService {
	return &LibraryService{store: store}
}

// ListDocuments pages through documents, newest first.
func (s *LibraryService) ListDocuments(ctx context.Context, filter domain.TypeFilter, limit, offset int) ([]domain.Document, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.GetDocuments(ctx, filter, limit, offset)
}

// GetDocument retrieves one document or domain.ErrNotFound.
func (s *LibraryService) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.GetDocument(ctx, id)
}

// GetDetail retrieves a document together with its images.
func (s *LibraryService) GetDetail(ctx context.Context, id string) (*driving.DocumentDetail, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := s.store.GetImagesByDoc(ctx, id)
	if err != nil {
		return nil, err
	}
	return &driving.DocumentDetail{Document: *doc, Images: images}, nil
}

// Stats returns document counts grouped by type, descending.
func (s *LibraryService) Stats(ctx context.Context) ([]domain.TypeCount, error) {
	return s.store.StatsCountByType(ctx)
}
