package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quan631/PBL-6/internal/adapters/driven/files"
	"github.com/Quan631/PBL-6/internal/adapters/driven/storage/memory"
	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/ports/driving"
)

// fakeExtractor maps sanitized filenames to canned recognition output.
type fakeExtractor struct {
	byName map[string]fakeRecognition
	calls  []string
}

type fakeRecognition struct {
	text string
	conf float64
	err  error
}

func (f *fakeExtractor) RecognizeFile(_ context.Context, path string, _ bool) (string, float64, error) {
	f.calls = append(f.calls, path)
	for name, rec := range f.byName {
		if strings.HasSuffix(path, name) {
			return rec.text, rec.conf, rec.err
		}
	}
	return "", 0, nil
}

// fakeExporter records export calls and returns a fixed path.
type fakeExporter struct {
	ext   string
	err   error
	calls int
}

func (f *fakeExporter) ExportWord(_ context.Context, destDir string, doc *domain.Document, _ []domain.Image) (string, error) {
	return f.export(destDir, doc)
}

func (f *fakeExporter) ExportExcel(_ context.Context, destDir string, doc *domain.Document, _ []domain.Image) (string, error) {
	return f.export(destDir, doc)
}

func (f *fakeExporter) export(destDir string, doc *domain.Document) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return destDir + "/" + doc.ID + f.ext, nil
}

func setupIngest(t *testing.T, extractor *fakeExtractor) (*IngestService, *memory.DocumentStore, *files.Layout) {
	t.Helper()
	store := memory.NewDocumentStore()
	layout, err := files.NewLayout(t.TempDir())
	require.NoError(t, err)
	svc := NewIngestService(store, layout, extractor,
		&fakeExporter{ext: ".docx"}, &fakeExporter{ext: ".xlsx"})
	return svc, store, layout
}

func upload(name, content string) driving.Upload {
	return driving.Upload{Name: name, Data: strings.NewReader(content)}
}

func TestCreateDocumentPipeline(t *testing.T) {
	extractor := &fakeExtractor{byName: map[string]fakeRecognition{
		"page1.png": {text: "ABC", conf: 0.9},
		"page2.png": {text: "", conf: 0},
	}}
	svc, store, _ := setupIngest(t, extractor)
	ctx := context.Background()

	result, err := svc.CreateDocument(ctx, driving.CreateDocumentRequest{
		Title:   "Scan batch",
		Files:   []driving.Upload{upload("page1.png", "img1"), upload("page2.png", "img2")},
		Enhance: true,
		RunOCR:  true,
	})
	require.NoError(t, err)

	doc := result.Document
	assert.Len(t, doc.ID, 12)
	assert.Equal(t, "Scan batch", doc.Title)
	// Only the image with text contributes a combined-text section.
	assert.Equal(t, "--- page1.png ---\nABC", doc.OCRText)
	assert.Equal(t, domain.DocTypeNormal, doc.Type)
	assert.True(t, result.Indexed)
	assert.Empty(t, result.Warnings)

	// Export paths were recorded by the second upsert.
	assert.True(t, strings.HasSuffix(doc.WordPath, doc.ID+".docx"))
	assert.True(t, strings.HasSuffix(doc.ExcelPath, doc.ID+".xlsx"))

	persisted, err := store.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.WordPath, persisted.WordPath)

	images, err := store.GetImagesByDoc(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "ABC", images[0].OCRText)
	assert.Empty(t, images[1].OCRText)
	assert.Len(t, extractor.calls, 2)
}

func TestCreateDocumentCombinedTextSeparators(t *testing.T) {
	extractor := &fakeExtractor{byName: map[string]fakeRecognition{
		"page1.png": {text: "first", conf: 0.9},
		"page2.png": {text: "second", conf: 0.8},
	}}
	svc, _, _ := setupIngest(t, extractor)

	result, err := svc.CreateDocument(context.Background(), driving.CreateDocumentRequest{
		Files:  []driving.Upload{upload("page1.png", "a"), upload("page2.png", "b")},
		RunOCR: true,
	})
	require.NoError(t, err)

	// No leading separator; the one between segments stays.
	want := "--- page1.png ---\nfirst\n\n--- page2.png ---\nsecond"
	assert.Equal(t, want, result.Document.OCRText)
}

func TestCreateDocumentDefaultTitleIsPersisted(t *testing.T) {
	svc, store, _ := setupIngest(t, &fakeExtractor{})
	ctx := context.Background()

	result, err := svc.CreateDocument(ctx, driving.CreateDocumentRequest{
		Files:  []driving.Upload{upload("page.png", "img")},
		RunOCR: true,
	})
	require.NoError(t, err)

	want := "Document " + result.Document.ID
	assert.Equal(t, want, result.Document.Title)

	// The default lands in the store, so title search finds it.
	persisted, err := store.GetDocument(ctx, result.Document.ID)
	require.NoError(t, err)
	assert.Equal(t, want, persisted.Title)

	found, err := store.SearchDocuments(ctx, want, domain.AllTypes(), 10)
	require.NoError(t, err)
	require.Len(t, found.Documents, 1)
	assert.Equal(t, result.Document.ID, found.Documents[0].ID)
}

func TestCreateDocumentClassifiesInvoice(t *testing.T) {
	extractor := &fakeExtractor{byName: map[string]fakeRecognition{
		"receipt.png": {text: "hóa đơn\nthành tiền: 1.250.000 vnd", conf: 0.8},
	}}
	svc, _, _ := setupIngest(t, extractor)

	result, err := svc.CreateDocument(context.Background(), driving.CreateDocumentRequest{
		Files:  []driving.Upload{upload("receipt.png", "img")},
		RunOCR: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DocTypeInvoice, result.Document.Type)
}

func TestCreateDocumentNoFiles(t *testing.T) {
	svc, _, _ := setupIngest(t, &fakeExtractor{})

	_, err := svc.CreateDocument(context.Background(), driving.CreateDocumentRequest{RunOCR: true})
	assert.ErrorIs(t, err, domain.ErrNoImages)
}

func TestCreateDocumentAbsorbsRecognitionFailure(t *testing.T) {
	extractor := &fakeExtractor{byName: map[string]fakeRecognition{
		"good.png": {text: "readable", conf: 0.7},
		"bad.png":  {err: errors.New("engine crashed")},
	}}
	svc, _, _ := setupIngest(t, extractor)

	result, err := svc.CreateDocument(context.Background(), driving.CreateDocumentRequest{
		Files:  []driving.Upload{upload("good.png", "a"), upload("bad.png", "b")},
		RunOCR: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "--- good.png ---\nreadable", result.Document.OCRText)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "bad.png")
}

func TestCreateDocumentSkipsRecognitionWhenDisabled(t *testing.T) {
	extractor := &fakeExtractor{byName: map[string]fakeRecognition{
		"page.png": {text: "never used", conf: 1},
	}}
	svc, _, _ := setupIngest(t, extractor)

	result, err := svc.CreateDocument(context.Background(), driving.CreateDocumentRequest{
		Files:  []driving.Upload{upload("page.png", "img")},
		RunOCR: false,
	})
	require.NoError(t, err)
	assert.Empty(t, extractor.calls)
	assert.Empty(t, result.Document.OCRText)
	assert.Equal(t, domain.DocTypeNormal, result.Document.Type)
}

func TestCreateDocumentExportFailureIsWarning(t *testing.T) {
	store := memory.NewDocumentStore()
	layout, err := files.NewLayout(t.TempDir())
	require.NoError(t, err)
	svc := NewIngestService(store, layout, &fakeExtractor{},
		&fakeExporter{ext: ".docx", err: errors.New("disk full")},
		&fakeExporter{ext: ".xlsx"})

	result, err := svc.CreateDocument(context.Background(), driving.CreateDocumentRequest{
		Files:  []driving.Upload{upload("page.png", "img")},
		RunOCR: true,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Document.WordPath)
	assert.NotEmpty(t, result.Document.ExcelPath)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, strings.Join(result.Warnings, "\n"), "word export failed")

	// The document is persisted despite the failed artifact.
	_, err = store.GetDocument(context.Background(), result.Document.ID)
	assert.NoError(t, err)
}

func TestCreateDocumentUnindexedWarning(t *testing.T) {
	store := memory.NewDocumentStore()
	store.Indexed = false
	layout, err := files.NewLayout(t.TempDir())
	require.NoError(t, err)
	svc := NewIngestService(store, layout, &fakeExtractor{}, nil, nil)

	result, err := svc.CreateDocument(context.Background(), driving.CreateDocumentRequest{
		Files:  []driving.Upload{upload("page.png", "img")},
		RunOCR: true,
	})
	require.NoError(t, err)
	assert.False(t, result.Indexed)
	assert.Contains(t, strings.Join(result.Warnings, "\n"), "not indexed")
}

func TestExportDocument(t *testing.T) {
	svc, store, _ := setupIngest(t, &fakeExtractor{})
	ctx := context.Background()

	_, err := store.UpsertDocument(ctx, &domain.Document{ID: "abc123def456", Type: domain.DocTypeNormal})
	require.NoError(t, err)

	wordPath, excelPath, err := svc.ExportDocument(ctx, "abc123def456")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(wordPath, "abc123def456.docx"))
	assert.True(t, strings.HasSuffix(excelPath, "abc123def456.xlsx"))

	doc, err := store.GetDocument(ctx, "abc123def456")
	require.NoError(t, err)
	assert.Equal(t, wordPath, doc.WordPath)
}

func TestExportDocumentNotFound(t *testing.T) {
	svc, _, _ := setupIngest(t, &fakeExtractor{})

	_, _, err := svc.ExportDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
