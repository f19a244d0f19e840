package driven

import (
	"context"

	"github.com/Quan631/PBL-6/internal/core/domain"
)

// WordExporter renders a document and its images into a Word artifact.
// Failures are caught by the pipeline and never roll back persistence.
type WordExporter interface {
	ExportWord(ctx context.Context, destDir string, doc *domain.Document, images []domain.Image) (path string, err error)
}

// ExcelExporter renders one row per image into an Excel artifact.
type ExcelExporter interface {
	ExportExcel(ctx context.Context, destDir string, doc *domain.Document, images []domain.Image) (path string, err error)
}
