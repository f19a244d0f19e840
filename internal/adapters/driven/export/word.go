package export

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/ports/driven"
)

// Ensure WordWriter implements the interface.
var _ driven.WordExporter = (*WordWriter)(nil)

// WordWriter renders a document's recognized text as a .docx file.
type WordWriter struct{}

// NewWordWriter creates a new Word exporter.
func NewWordWriter() *WordWriter {
	return &WordWriter{}
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// ExportWord writes <doc.ID>.docx into destDir and returns its path.
func (w *WordWriter) ExportWord(ctx context.Context, destDir string, doc *domain.Document, images []domain.Image) (string, error) {
	if doc == nil || doc.ID == "" {
		return "", domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(destDir, doc.ID+".docx")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating word file: %w", err)
	}

	zw := zip.NewWriter(f)
	err = writeDocxParts(zw, doc, images)
	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing word file: %w", err)
	}
	return path, nil
}

func writeDocxParts(zw *zip.Writer, doc *domain.Document, images []domain.Image) error {
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", buildDocumentXML(doc, images)},
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

// buildDocumentXML renders the main document part: a title heading,
// the document metadata, then one paragraph per recognized line.
func buildDocumentXML(doc *domain.Document, images []domain.Image) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeHeading(&b, doc.DisplayTitle())
	writeParagraph(&b, "Type: "+string(doc.Type))
	writeParagraph(&b, "Created: "+doc.CreatedAt)
	writeParagraph(&b, fmt.Sprintf("Images: %d", len(images)))
	writeParagraph(&b, "")

	for _, line := range strings.Split(doc.OCRText, "\n") {
		writeParagraph(&b, line)
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeHeading(b *strings.Builder, text string) {
	b.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

func writeParagraph(b *strings.Builder, text string) {
	b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

func escapeXML(s string) string {
	var b strings.Builder
	// EscapeText cannot fail when writing to a strings.Builder.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
