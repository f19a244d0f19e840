package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Quan631/PBL-6/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/ports/driven"
	"github.com/Quan631/PBL-6/internal/logger"
)

// Ensure Store implements the port.
var _ driven.DocumentStore = (*Store)(nil)

// Store is the SQLite-backed document store. It owns the documents and
// images tables and keeps the FTS5 mirror in lockstep where available.
type Store struct {
	db    *sql.DB
	path  string
	ftsOK bool
}

// NewStore opens (creating if necessary) the store file at dbPath.
func NewStore(dbPath string) (*Store, error) {
	// WAL mode for better concurrency between the writer and readers.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	s.ftsOK = s.ensureIndex()

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// IndexAvailable reports whether the FTS5 mirror is usable.
func (s *Store) IndexAvailable() bool {
	return s.ftsOK
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ensureIndex creates the FTS5 mirror if the build supports it.
// Failure leaves the store fully functional on the scan path.
func (s *Store) ensureIndex() bool {
	_, err := s.db.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts
		USING fts5(document_id, title, doc_type, ocr_text)
	`)
	if err != nil {
		logger.Warn("Full-text index unavailable, search degrades to scan: %v", err)
		return false
	}
	return true
}

// UpsertDocument inserts or fully replaces a document keyed by ID and
// refreshes the mirrored index entry (delete then reinsert). The
// returned flag reports whether the mirror was updated; mirror
// failures never fail the document write.
func (s *Store) UpsertDocument(ctx context.Context, doc *domain.Document) (bool, error) {
	if doc == nil || doc.ID == "" {
		return false, domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, created_at, doc_type, ocr_text, word_path, excel_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			created_at = excluded.created_at,
			doc_type = excluded.doc_type,
			ocr_text = excluded.ocr_text,
			word_path = excluded.word_path,
			excel_path = excluded.excel_path
	`, doc.ID, doc.Title, doc.CreatedAt, string(doc.Type), doc.OCRText,
		nullString(doc.WordPath), nullString(doc.ExcelPath))
	if err != nil {
		return false, fmt.Errorf("saving document: %w", err)
	}

	return s.syncIndex(ctx, doc), nil
}

// syncIndex refreshes one mirror row. Errors are absorbed; the mirror
// is derived state and must never block persistence.
func (s *Store) syncIndex(ctx context.Context, doc *domain.Document) bool {
	if !s.ftsOK {
		return false
	}
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM documents_fts WHERE document_id = ?", doc.ID); err != nil {
		logger.Warn("Index delete failed for %s: %v", doc.ID, err)
		return false
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO documents_fts (document_id, title, doc_type, ocr_text)
		VALUES (?, ?, ?, ?)
	`, doc.ID, doc.Title, string(doc.Type), doc.OCRText); err != nil {
		logger.Warn("Index insert failed for %s: %v", doc.ID, err)
		return false
	}
	return true
}

// InsertImage appends a new image row and fills in its surrogate key.
func (s *Store) InsertImage(ctx context.Context, img *domain.Image) error {
	if img == nil || img.DocumentID == "" {
		return domain.ErrInvalidInput
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO images (document_id, filename, stored_path, ocr_text)
		VALUES (?, ?, ?, ?)
	`, img.DocumentID, img.Filename, img.StoredPath, nullString(img.OCRText))
	if err != nil {
		return fmt.Errorf("saving image: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		img.ID = id
	}
	return nil
}

// UpdateImageOCR sets recognized text on the image matching
// (documentID, storedPath). A missing match is a no-op.
func (s *Store) UpdateImageOCR(ctx context.Context, documentID, storedPath, text string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE images SET ocr_text = ?
		WHERE document_id = ? AND stored_path = ?
	`, text, documentID, storedPath)
	if err != nil {
		return fmt.Errorf("updating image text: %w", err)
	}
	return nil
}

// GetDocuments pages through documents, newest first, optionally
// filtered to one type.
func (s *Store) GetDocuments(ctx context.Context, filter domain.TypeFilter, limit, offset int) ([]domain.Document, error) {
	query := `
		SELECT id, title, created_at, doc_type, ocr_text, word_path, excel_path
		FROM documents
	`
	var args []any
	if t, ok := filter.Match(); ok {
		query += " WHERE doc_type = ?"
		args = append(args, string(t))
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// GetDocument retrieves one document or domain.ErrNotFound.
func (s *Store) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, created_at, doc_type, ocr_text, word_path, excel_path
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// GetImagesByDoc returns a document's images in insertion order.
func (s *Store) GetImagesByDoc(ctx context.Context, documentID string) ([]domain.Image, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, filename, stored_path, ocr_text
		FROM images
		WHERE document_id = ?
		ORDER BY id ASC
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	return scanImages(rows)
}

// SearchDocuments answers a query from the FTS mirror, degrading to a
// LIKE scan when the mirror is missing or the backend rejects the
// query (FTS5 has its own query syntax). Both paths share ordering and
// filter semantics; only recall differs.
func (s *Store) SearchDocuments(ctx context.Context, query string, filter domain.TypeFilter, limit int) (domain.DocumentSearchResult, error) {
	q := strings.TrimSpace(query)

	if s.ftsOK {
		docs, err := s.searchDocumentsFTS(ctx, q, filter, limit)
		if err == nil {
			return domain.DocumentSearchResult{Documents: docs}, nil
		}
		logger.Warn("Index search failed, falling back to scan: %v", err)
	}

	docs, err := s.searchDocumentsScan(ctx, q, filter, limit)
	if err != nil {
		return domain.DocumentSearchResult{}, err
	}
	return domain.DocumentSearchResult{Documents: docs, Degraded: true}, nil
}

func (s *Store) searchDocumentsFTS(ctx context.Context, q string, filter domain.TypeFilter, limit int) ([]domain.Document, error) {
	query := `
		SELECT d.id, d.title, d.created_at, d.doc_type, d.ocr_text, d.word_path, d.excel_path
		FROM documents_fts f
		JOIN documents d ON d.id = f.document_id
		WHERE documents_fts MATCH ?
	`
	args := []any{q}
	if t, ok := filter.Match(); ok {
		query += " AND d.doc_type = ?"
		args = append(args, string(t))
	}
	query += " ORDER BY d.created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *Store) searchDocumentsScan(ctx context.Context, q string, filter domain.TypeFilter, limit int) ([]domain.Document, error) {
	like := "%" + q + "%"
	query := `
		SELECT id, title, created_at, doc_type, ocr_text, word_path, excel_path
		FROM documents
		WHERE (id LIKE ? OR title LIKE ? OR ocr_text LIKE ?)
	`
	args := []any{like, like, like}
	if t, ok := filter.Match(); ok {
		query += " AND doc_type = ?"
		args = append(args, string(t))
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scan search: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// SearchImages matches image filenames and per-image OCR text. The
// mirror does not cover images, so the substring scan is the primary
// path here, not a degradation.
func (s *Store) SearchImages(ctx context.Context, query string, limit int) (domain.ImageSearchResult, error) {
	like := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, filename, stored_path, ocr_text
		FROM images
		WHERE filename LIKE ? OR ocr_text LIKE ?
		ORDER BY id DESC
		LIMIT ?
	`, like, like, limit)
	if err != nil {
		return domain.ImageSearchResult{}, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	imgs, err := scanImages(rows)
	if err != nil {
		return domain.ImageSearchResult{}, err
	}
	return domain.ImageSearchResult{Images: imgs}, nil
}

// StatsCountByType counts documents per type, NULL reported as
// "Unknown", largest first.
func (s *Store) StatsCountByType(ctx context.Context) ([]domain.TypeCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(doc_type, 'Unknown') AS doc_type, COUNT(*) AS cnt
		FROM documents
		GROUP BY doc_type
		ORDER BY cnt DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}
	defer rows.Close()

	var counts []domain.TypeCount //nolint:prealloc // size unknown from query
	for rows.Next() {
		var tc domain.TypeCount
		if err := rows.Scan(&tc.Label, &tc.Count); err != nil {
			return nil, fmt.Errorf("scanning stats: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stats: %w", err)
	}
	return counts, nil
}

// Reset drops all rows and recreates the schema, mirror included.
// Files on disk are untouched.
func (s *Store) Reset(ctx context.Context) error {
	for _, stmt := range []string{
		"DROP TABLE IF EXISTS images",
		"DROP TABLE IF EXISTS documents",
		"DROP TABLE IF EXISTS documents_fts",
		"DROP TABLE IF EXISTS schema_migrations",
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("resetting store: %w", err)
		}
	}
	if err := s.migrate(migrations.FS); err != nil {
		return fmt.Errorf("recreating schema: %w", err)
	}
	s.ftsOK = s.ensureIndex()
	return nil
}

// ==================== Helper Functions ====================

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// scanDocument scans a single document row.
func scanDocument(row *sql.Row) (*domain.Document, error) {
	var doc domain.Document
	var docType string
	var title, ocrText, wordPath, excelPath sql.NullString

	if err := row.Scan(&doc.ID, &title, &doc.CreatedAt, &docType,
		&ocrText, &wordPath, &excelPath); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	doc.Title = title.String
	doc.Type = domain.DocType(docType)
	doc.OCRText = ocrText.String
	doc.WordPath = wordPath.String
	doc.ExcelPath = excelPath.String
	return &doc, nil
}

// scanDocuments scans document rows from *sql.Rows.
func scanDocuments(rows *sql.Rows) ([]domain.Document, error) {
	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		var doc domain.Document
		var docType string
		var title, ocrText, wordPath, excelPath sql.NullString
		if err := rows.Scan(&doc.ID, &title, &doc.CreatedAt, &docType,
			&ocrText, &wordPath, &excelPath); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		doc.Title = title.String
		doc.Type = domain.DocType(docType)
		doc.OCRText = ocrText.String
		doc.WordPath = wordPath.String
		doc.ExcelPath = excelPath.String
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

// scanImages scans image rows.
func scanImages(rows *sql.Rows) ([]domain.Image, error) {
	var imgs []domain.Image //nolint:prealloc // size unknown from query
	for rows.Next() {
		var img domain.Image
		var ocrText sql.NullString
		if err := rows.Scan(&img.ID, &img.DocumentID, &img.Filename,
			&img.StoredPath, &ocrText); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		img.OCRText = ocrText.String
		imgs = append(imgs, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating images: %w", err)
	}
	return imgs, nil
}
