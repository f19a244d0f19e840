package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quan631/PBL-6/internal/adapters/driven/storage/memory"
	"github.com/Quan631/PBL-6/internal/core/domain"
)

func seedSearch(t *testing.T) (*SearchService, *memory.DocumentStore) {
	t.Helper()
	store := memory.NewDocumentStore()
	ctx := context.Background()

	_, err := store.UpsertDocument(ctx, &domain.Document{
		ID: "inv001", Type: domain.DocTypeInvoice,
		OCRText: "hóa đơn tổng cộng 500000 vnd", CreatedAt: "2026-08-30T10:00:00",
	})
	require.NoError(t, err)
	_, err = store.UpsertDocument(ctx, &domain.Document{
		ID: "doc001", Type: domain.DocTypeNormal,
		OCRText: "meeting notes", CreatedAt: "2026-08-29T10:00:00",
	})
	require.NoError(t, err)
	require.NoError(t, store.InsertImage(ctx, &domain.Image{
		DocumentID: "inv001", Filename: "receipt.png",
		StoredPath: "/u/inv001/receipt.png", OCRText: "500000 vnd",
	}))

	return NewSearchService(store), store
}

func TestSearchDocuments(t *testing.T) {
	svc, _ := seedSearch(t)
	ctx := context.Background()

	result, err := svc.SearchDocuments(ctx, "vnd", domain.AllTypes(), 10)
	require.NoError(t, err)
	assert.False(t, result.Degraded)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, "inv001", result.Documents[0].ID)

	// Type filter narrows the same query to nothing.
	result, err = svc.SearchDocuments(ctx, "vnd", domain.FilterType(domain.DocTypeNormal), 10)
	require.NoError(t, err)
	assert.Empty(t, result.Documents)
}

func TestSearchDocumentsBlankQuery(t *testing.T) {
	svc, _ := seedSearch(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := svc.SearchDocuments(context.Background(), q, domain.AllTypes(), 10)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestSearchDocumentsDegraded(t *testing.T) {
	svc, store := seedSearch(t)
	store.Indexed = false

	result, err := svc.SearchDocuments(context.Background(), "vnd", domain.AllTypes(), 10)
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	require.Len(t, result.Documents, 1)
}

func TestSearchImages(t *testing.T) {
	svc, _ := seedSearch(t)
	ctx := context.Background()

	result, err := svc.SearchImages(ctx, "receipt", 10)
	require.NoError(t, err)
	require.Len(t, result.Images, 1)
	assert.Equal(t, "inv001", result.Images[0].DocumentID)

	_, err = svc.SearchImages(ctx, "  ", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
