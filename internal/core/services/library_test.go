package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quan631/PBL-6/internal/adapters/driven/storage/memory"
	"github.com/Quan631/PBL-6/internal/core/domain"
)

func seedLibrary(t *testing.T) (*LibraryService, *memory.DocumentStore) {
	t.Helper()
	store := memory.NewDocumentStore()
	ctx := context.Background()

	docs := []*domain.Document{
		{ID: "inv001", Title: "August invoice", Type: domain.DocTypeInvoice, CreatedAt: "2026-08-30T10:00:00"},
		{ID: "tel001", Type: domain.DocTypeGovTelegram, CreatedAt: "2026-08-29T10:00:00"},
		{ID: "doc001", Type: domain.DocTypeNormal, CreatedAt: "2026-08-28T10:00:00"},
	}
	for _, d := range docs {
		_, err := store.UpsertDocument(ctx, d)
		require.NoError(t, err)
	}
	require.NoError(t, store.InsertImage(ctx, &domain.Image{
		DocumentID: "inv001", Filename: "page1.png", StoredPath: "/u/inv001/page1.png",
	}))

	return NewLibraryService(store), store
}

func TestListDocuments(t *testing.T) {
	svc, _ := seedLibrary(t)
	ctx := context.Background()

	docs, err := svc.ListDocuments(ctx, domain.AllTypes(), 10, 0)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "inv001", docs[0].ID)

	docs, err = svc.ListDocuments(ctx, domain.FilterType(domain.DocTypeGovTelegram), 10, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "tel001", docs[0].ID)

	// Non-positive limit falls back to the default page size.
	docs, err = svc.ListDocuments(ctx, domain.AllTypes(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestGetDocument(t *testing.T) {
	svc, _ := seedLibrary(t)
	ctx := context.Background()

	doc, err := svc.GetDocument(ctx, "inv001")
	require.NoError(t, err)
	assert.Equal(t, "August invoice", doc.Title)

	_, err = svc.GetDocument(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetDocument(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetDetail(t *testing.T) {
	svc, _ := seedLibrary(t)

	detail, err := svc.GetDetail(context.Background(), "inv001")
	require.NoError(t, err)
	assert.Equal(t, "inv001", detail.Document.ID)
	require.Len(t, detail.Images, 1)
	assert.Equal(t, "page1.png", detail.Images[0].Filename)

	// A document with no images still yields a detail view.
	detail, err = svc.GetDetail(context.Background(), "doc001")
	require.NoError(t, err)
	assert.Empty(t, detail.Images)
}

func TestStats(t *testing.T) {
	svc, _ := seedLibrary(t)

	counts, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 3)
	for _, tc := range counts {
		assert.Equal(t, 1, tc.Count)
	}
}
