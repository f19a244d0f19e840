package cli

import (
	"context"
	"os"
	"strings"

	"github.com/Quan631/PBL-6/internal/adapters/driven/files"
	"github.com/Quan631/PBL-6/internal/adapters/driven/storage/memory"
	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/services"
)

// testExtractor returns fixed text for every image.
type testExtractor struct {
	text string
	conf float64
}

func (f *testExtractor) RecognizeFile(_ context.Context, _ string, _ bool) (string, float64, error) {
	return f.text, f.conf, nil
}

// testExporter writes nothing and reports a deterministic path.
type testExporter struct{ ext string }

func (f *testExporter) ExportWord(_ context.Context, destDir string, doc *domain.Document, _ []domain.Image) (string, error) {
	return destDir + "/" + doc.ID + f.ext, nil
}

func (f *testExporter) ExportExcel(_ context.Context, destDir string, doc *domain.Document, _ []domain.Image) (string, error) {
	return destDir + "/" + doc.ID + f.ext, nil
}

// setupTestServices wires the commands to an in-memory store seeded
// with a few documents. The returned cleanup restores the globals.
func setupTestServices() func() {
	store := memory.NewDocumentStore()
	tempDir, _ := os.MkdirTemp("", "docmanager-cli-test-*")
	layout, _ := files.NewLayout(tempDir)

	ctx := context.Background()
	seed := []*domain.Document{
		{ID: "inv001aaaaaa", Title: "August invoice", Type: domain.DocTypeInvoice,
			CreatedAt: "2026-08-30T10:00:00", OCRText: "hóa đơn 500000 vnd"},
		{ID: "doc001aaaaaa", Type: domain.DocTypeNormal,
			CreatedAt: "2026-08-29T10:00:00", OCRText: "meeting notes"},
	}
	for _, d := range seed {
		store.UpsertDocument(ctx, d)
	}
	store.InsertImage(ctx, &domain.Image{
		DocumentID: "inv001aaaaaa", Filename: "receipt.png",
		StoredPath: "/u/inv001aaaaaa/receipt.png", OCRText: "500000 vnd",
	})

	extractor := &testExtractor{text: "hóa đơn tổng cộng 500000 vnd", conf: 0.9}
	ingestService = services.NewIngestService(store, layout, extractor,
		&testExporter{ext: ".docx"}, &testExporter{ext: ".xlsx"})
	libraryService = services.NewLibraryService(store)
	searchService = services.NewSearchService(store)
	maintenanceService = services.NewMaintenanceService(store, layout)

	return func() {
		ingestService = nil
		libraryService = nil
		searchService = nil
		maintenanceService = nil
		os.RemoveAll(tempDir)
	}
}

// writeTestUpload puts a placeholder upload file on disk. The fake
// extractor never decodes it, so any bytes do.
func writeTestUpload(dir, name string) string {
	path := dir + "/" + name
	os.WriteFile(path, []byte(strings.Repeat("x", 16)), 0600)
	return path
}
