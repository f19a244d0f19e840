package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Quan631/PBL-6/internal/core/classify"
	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/ports/driven"
	"github.com/Quan631/PBL-6/internal/core/ports/driving"
	"github.com/Quan631/PBL-6/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the ingestion pipeline.
type IngestService struct {
	store     driven.DocumentStore
	files     driven.FileStore
	extractor driven.TextExtractor
	word      driven.WordExporter
	excel     driven.ExcelExporter
}

// NewIngestService creates a new ingestion service. The extractor and
// exporters may be nil; the corresponding stages are then skipped with
// a warning instead of failing the batch.
func NewIngestService(
	store driven.DocumentStore,
	files driven.FileStore,
	extractor driven.TextExtractor,
	word driven.WordExporter,
	excel driven.ExcelExporter,
) *IngestService {
	return &IngestService{
		store:     store,
		files:     files,
		extractor: extractor,
		word:      word,
		excel:     excel,
	}
}

// newDocumentID mints a 12-character hex document ID.
func newDocumentID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// CreateDocument runs one ingestion batch end to end.
func (s *IngestService) CreateDocument(ctx context.Context, req driving.CreateDocumentRequest) (*driving.CreateDocumentResult, error) {
	if len(req.Files) == 0 {
		return nil, domain.ErrNoImages
	}

	doc := domain.Document{
		ID:        newDocumentID(),
		Title:     req.Title,
		CreatedAt: time.Now().Format(domain.CreatedAtLayout),
	}
	// The default title is persisted, not just displayed, so the
	// search mirror indexes it.
	if doc.Title == "" {
		doc.Title = "Document " + doc.ID
	}
	logger.Section("Ingest " + doc.ID)

	result := &driving.CreateDocumentResult{}

	// Stage 1: save and register every image before any recognition.
	// A failed save aborts the batch; nothing has been persisted yet.
	images, err := s.saveImages(ctx, doc.ID, req.Files)
	if err != nil {
		return nil, err
	}
	result.Images = images

	// Stage 2: recognize per image. Failures are absorbed as warnings
	// so one bad scan cannot sink the batch.
	combined := ""
	if req.RunOCR && s.extractor != nil {
		combined = s.recognizeImages(ctx, images, req.Enhance, result)
	} else if req.RunOCR {
		result.Warnings = append(result.Warnings, "recognition unavailable, images saved without text")
	}

	// Stage 3: classify the combined text. Empty text classifies as
	// Normal, so a recognition-free batch still gets a type.
	doc.OCRText = strings.TrimSpace(combined)
	doc.Type = classify.Classify(doc.OCRText)
	logger.Debug("Classified %s as %s", doc.ID, doc.Type)

	// Stage 4: persist. This is the durability point.
	indexed, err := s.store.UpsertDocument(ctx, &doc)
	if err != nil {
		return nil, fmt.Errorf("persisting document: %w", err)
	}
	result.Indexed = indexed
	if !indexed {
		result.Warnings = append(result.Warnings, "document saved but not indexed for full-text search")
	}

	// Stage 5: export, best effort. Paths land via a second upsert.
	s.exportDocument(ctx, &doc, images, result)

	result.Document = doc
	return result, nil
}

// saveImages writes each upload to disk and registers its row.
func (s *IngestService) saveImages(ctx context.Context, docID string, files []driving.Upload) ([]domain.Image, error) {
	images := make([]domain.Image, 0, len(files))
	for _, f := range files {
		sanitized, storedPath, err := s.files.SaveUpload(docID, f.Name, f.Data)
		if err != nil {
			return nil, fmt.Errorf("saving upload %q: %w", f.Name, err)
		}

		img := domain.Image{
			DocumentID: docID,
			Filename:   sanitized,
			StoredPath: storedPath,
		}
		if err := s.store.InsertImage(ctx, &img); err != nil {
			return nil, fmt.Errorf("registering image %q: %w", sanitized, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// recognizeImages runs recognition over each saved image and builds
// the combined text. Per-image failures become warnings.
func (s *IngestService) recognizeImages(ctx context.Context, images []domain.Image, enhance bool, result *driving.CreateDocumentResult) string {
	combined := ""
	for i := range images {
		img := &images[i]
		text, conf, err := s.extractor.RecognizeFile(ctx, img.StoredPath, enhance)
		if err != nil {
			logger.Warn("Recognition failed for %s: %v", img.Filename, err)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("recognition failed for %s: %v", img.Filename, err))
			continue
		}
		logger.Debug("Recognized %s (confidence %.2f)", img.Filename, conf)

		img.OCRText = text
		if err := s.store.UpdateImageOCR(ctx, img.DocumentID, img.StoredPath, text); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("saving text for %s: %v", img.Filename, err))
		}

		if text != "" {
			combined += fmt.Sprintf("\n\n--- %s ---\n%s", img.Filename, text)
		}
	}
	return combined
}

// exportDocument runs both exporters and records the artifact paths.
// Any failure is absorbed; the persisted document stands.
func (s *IngestService) exportDocument(ctx context.Context, doc *domain.Document, images []domain.Image, result *driving.CreateDocumentResult) {
	if s.word == nil && s.excel == nil {
		return
	}

	destDir, err := s.files.ExportDir(doc.ID)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("preparing export directory: %v", err))
		return
	}

	changed := false
	if s.word != nil {
		if path, err := s.word.ExportWord(ctx, destDir, doc, images); err != nil {
			logger.Warn("Word export failed for %s: %v", doc.ID, err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("word export failed: %v", err))
		} else {
			doc.WordPath = path
			changed = true
		}
	}
	if s.excel != nil {
		if path, err := s.excel.ExportExcel(ctx, destDir, doc, images); err != nil {
			logger.Warn("Excel export failed for %s: %v", doc.ID, err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("excel export failed: %v", err))
		} else {
			doc.ExcelPath = path
			changed = true
		}
	}

	if changed {
		if _, err := s.store.UpsertDocument(ctx, doc); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("recording export paths: %v", err))
		}
	}
}

// ExportDocument (re-)runs the exporters for a persisted document.
func (s *IngestService) ExportDocument(ctx context.Context, documentID string) (string, string, error) {
	if s.word == nil && s.excel == nil {
		return "", "", domain.ErrExporterUnavailable
	}

	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return "", "", err
	}
	images, err := s.store.GetImagesByDoc(ctx, documentID)
	if err != nil {
		return "", "", err
	}

	destDir, err := s.files.ExportDir(doc.ID)
	if err != nil {
		return "", "", fmt.Errorf("preparing export directory: %w", err)
	}

	if s.word != nil {
		path, err := s.word.ExportWord(ctx, destDir, doc, images)
		if err != nil {
			return "", "", fmt.Errorf("word export: %w", err)
		}
		doc.WordPath = path
	}
	if s.excel != nil {
		path, err := s.excel.ExportExcel(ctx, destDir, doc, images)
		if err != nil {
			return "", "", fmt.Errorf("excel export: %w", err)
		}
		doc.ExcelPath = path
	}

	if _, err := s.store.UpsertDocument(ctx, doc); err != nil {
		return "", "", fmt.Errorf("recording export paths: %w", err)
	}
	return doc.WordPath, doc.ExcelPath, nil
}
