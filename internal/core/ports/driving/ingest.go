package driving

import (
	"context"
	"io"

	"github.com/Quan631/PBL-6/internal/core/domain"
)

// Upload is one file submitted to an ingestion batch. Order matters:
// the combined text and exported artifacts preserve upload order.
type Upload struct {
	// Name is the original (unsanitized) filename.
	Name string
	// Data supplies the image bytes.
	Data io.Reader
}

// CreateDocumentRequest describes one ingestion batch.
type CreateDocumentRequest struct {
	// Title is the display title; empty defaults to "Document <id>".
	Title string
	// Files are the uploaded images, at least one.
	Files []Upload
	// Enhance applies the preprocessing chain before recognition.
	Enhance bool
	// RunOCR controls whether recognition runs now. When false the
	// images are saved with empty text and the batch classifies as
	// Normal.
	RunOCR bool
}

// CreateDocumentResult reports one completed ingestion batch.
type CreateDocumentResult struct {
	Document domain.Document
	Images   []domain.Image
	// Indexed reports whether the search mirror recorded the batch.
	Indexed bool
	// Warnings lists absorbed per-image and per-artifact failures,
	// one human-readable line each.
	Warnings []string
}

// IngestService orchestrates the ingestion pipeline:
// save images, recognize, classify, persist, export.
type IngestService interface {
	// CreateDocument runs one batch end to end. The document is
	// durable once persisted even if export subsequently fails.
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (*CreateDocumentResult, error)

	// ExportDocument (re-)runs the exporters for a persisted document
	// and records the resulting paths via a second upsert.
	ExportDocument(ctx context.Context, documentID string) (wordPath, excelPath string, err error)
}
