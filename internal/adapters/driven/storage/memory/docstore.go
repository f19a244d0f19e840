// Package memory provides in-memory implementations of the driven
// storage ports. Nothing survives process exit; the package backs
// service tests and makes degraded-index behavior easy to exercise.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// All searches run the substring scan, so document search results are
// always reported as degraded unless Indexed is set.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	images    []domain.Image
	nextID    int64

	// Indexed controls the flag UpsertDocument returns and whether
	// SearchDocuments reports degradation. Tests flip it to model a
	// store with or without a working full-text index.
	Indexed bool
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
		nextID:    1,
		Indexed:   true,
	}
}

// UpsertDocument stores or fully replaces a document.
func (s *DocumentStore) UpsertDocument(_ context.Context, doc *domain.Document) (bool, error) {
	if doc == nil || doc.ID == "" {
		return false, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = *doc
	return s.Indexed, nil
}

// InsertImage appends an image row and assigns its ID.
func (s *DocumentStore) InsertImage(_ context.Context, img *domain.Image) error {
	if img == nil || img.DocumentID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	img.ID = s.nextID
	s.nextID++
	s.images = append(s.images, *img)
	return nil
}

// UpdateImageOCR sets recognized text on the matching image. A miss is
// a no-op.
func (s *DocumentStore) UpdateImageOCR(_ context.Context, documentID, storedPath, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.images {
		if s.images[i].DocumentID == documentID && s.images[i].StoredPath == storedPath {
			s.images[i].OCRText = text
		}
	}
	return nil
}

// GetDocuments lists documents newest first, optionally filtered.
func (s *DocumentStore) GetDocuments(_ context.Context, filter domain.TypeFilter, limit, offset int) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []domain.Document
	for _, doc := range s.documents {
		if t, ok := filter.Match(); ok && doc.Type != t {
			continue
		}
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt > docs[j].CreatedAt
	})

	return page(docs, limit, offset), nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// GetImagesByDoc returns a document's images in insertion order.
func (s *DocumentStore) GetImagesByDoc(_ context.Context, documentID string) ([]domain.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var imgs []domain.Image
	for _, img := range s.images {
		if img.DocumentID == documentID {
			imgs = append(imgs, img)
		}
	}
	return imgs, nil
}

// SearchDocuments scans id, title and text for the query substring.
func (s *DocumentStore) SearchDocuments(_ context.Context, query string, filter domain.TypeFilter, limit int) (domain.DocumentSearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.TrimSpace(query)
	var docs []domain.Document
	for _, doc := range s.documents {
		if t, ok := filter.Match(); ok && doc.Type != t {
			continue
		}
		if strings.Contains(doc.ID, q) ||
			strings.Contains(doc.Title, q) ||
			strings.Contains(doc.OCRText, q) {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt > docs[j].CreatedAt
	})

	return domain.DocumentSearchResult{
		Documents: page(docs, limit, 0),
		Degraded:  !s.Indexed,
	}, nil
}

// SearchImages scans image filenames and text, newest first.
func (s *DocumentStore) SearchImages(_ context.Context, query string, limit int) (domain.ImageSearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.TrimSpace(query)
	var imgs []domain.Image
	for i := len(s.images) - 1; i >= 0; i-- {
		img := s.images[i]
		if strings.Contains(img.Filename, q) || strings.Contains(img.OCRText, q) {
			imgs = append(imgs, img)
		}
	}
	return domain.ImageSearchResult{Images: page(imgs, limit, 0)}, nil
}

// StatsCountByType counts documents per type, largest group first.
func (s *DocumentStore) StatsCountByType(_ context.Context) ([]domain.TypeCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byType := make(map[string]int)
	for _, doc := range s.documents {
		label := string(doc.Type)
		if label == "" {
			label = "Unknown"
		}
		byType[label]++
	}

	counts := make([]domain.TypeCount, 0, len(byType))
	for label, count := range byType {
		counts = append(counts, domain.TypeCount{Label: label, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
	return counts, nil
}

// Reset drops all stored rows.
func (s *DocumentStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make(map[string]domain.Document)
	s.images = nil
	s.nextID = 1
	return nil
}

// Close is a no-op for the in-memory store.
func (s *DocumentStore) Close() error {
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
