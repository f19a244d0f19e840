package export

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/ports/driven"
)

// Ensure ExcelWriter implements the interface.
var _ driven.ExcelExporter = (*ExcelWriter)(nil)

// ExcelWriter renders a document's per-image OCR table as an .xlsx file.
type ExcelWriter struct{}

// NewExcelWriter creates a new Excel exporter.
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{}
}

const xlsxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
</Types>`

const xlsxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`

const xlsxWorkbook = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets><sheet name="OCR" sheetId="1" r:id="rId1"/></sheets>
</workbook>`

const xlsxWorkbookRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`

// ExportExcel writes <doc.ID>.xlsx into destDir and returns its path.
func (w *ExcelWriter) ExportExcel(ctx context.Context, destDir string, doc *domain.Document, images []domain.Image) (string, error) {
	if doc == nil || doc.ID == "" {
		return "", domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(destDir, doc.ID+".xlsx")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating excel file: %w", err)
	}

	zw := zip.NewWriter(f)
	err = writeXlsxParts(zw, doc, images)
	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing excel file: %w", err)
	}
	return path, nil
}

func writeXlsxParts(zw *zip.Writer, doc *domain.Document, images []domain.Image) error {
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", xlsxContentTypes},
		{"_rels/.rels", xlsxRootRels},
		{"xl/workbook.xml", xlsxWorkbook},
		{"xl/_rels/workbook.xml.rels", xlsxWorkbookRels},
		{"xl/worksheets/sheet1.xml", buildSheetXML(doc, images)},
	}
	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := pw.Write([]byte(part.content)); err != nil {
			return err
		}
	}
	return nil
}

// buildSheetXML renders the worksheet: document summary rows, a blank
// separator, then a header row and one row per image. Inline strings
// keep the package free of a shared string table.
func buildSheetXML(doc *domain.Document, images []domain.Image) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>`)

	rows := [][]string{
		{"Document", doc.DisplayTitle()},
		{"Type", string(doc.Type)},
		{"Created", doc.CreatedAt},
		{},
		{"Filename", "Stored Path", "OCR Text"},
	}
	for _, img := range images {
		rows = append(rows, []string{img.Filename, img.StoredPath, img.OCRText})
	}

	for i, cells := range rows {
		writeRow(&b, i+1, cells)
	}

	b.WriteString(`</sheetData></worksheet>`)
	return b.String()
}

func writeRow(b *strings.Builder, rowNum int, cells []string) {
	fmt.Fprintf(b, `<row r="%d">`, rowNum)
	for i, cell := range cells {
		fmt.Fprintf(b, `<c r="%s%d" t="inlineStr"><is><t xml:space="preserve">%s</t></is></c>`,
			columnName(i), rowNum, escapeXML(cell))
	}
	b.WriteString(`</row>`)
}

// columnName converts a zero-based column index to its letter form.
func columnName(i int) string {
	name := ""
	for {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
		if i < 0 {
			return name
		}
	}
}
