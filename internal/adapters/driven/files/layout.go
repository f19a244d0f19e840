// Package files owns the on-disk data layout: one data root holding
// the uploads subtree, the exports subtree, and the store file.
package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Quan631/PBL-6/internal/core/ports/driven"
)

// Ensure Layout implements the port.
var _ driven.FileStore = (*Layout)(nil)

// unsafeRun matches every run of characters not allowed in stored
// filenames.
var unsafeRun = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

const maxFilenameLen = 180

// Layout is a directory-backed FileStore rooted at a data directory.
type Layout struct {
	dataDir string
}

// NewLayout creates the data, uploads and exports directories under
// root and returns the layout.
func NewLayout(root string) (*Layout, error) {
	dataDir := filepath.Join(root, "data")
	for _, dir := range []string{
		filepath.Join(dataDir, "uploads"),
		filepath.Join(dataDir, "exports"),
	} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	return &Layout{dataDir: dataDir}, nil
}

// DataDir returns the data root.
func (l *Layout) DataDir() string {
	return l.dataDir
}

// StorePath returns the location of the SQLite store file.
func (l *Layout) StorePath() string {
	return filepath.Join(l.dataDir, "app.db")
}

// SaveUpload writes one uploaded image under the document's upload
// directory. The filename is sanitized first; when two uploads in the
// same document sanitize to the same name, a numeric suffix is added
// instead of silently overwriting.
func (l *Layout) SaveUpload(documentID, filename string, r io.Reader) (string, string, error) {
	dir := filepath.Join(l.dataDir, "uploads", documentID)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", "", fmt.Errorf("creating upload directory: %w", err)
	}

	name := SafeFilename(filename)
	path := filepath.Join(dir, name)
	for n := 2; fileExists(path); n++ {
		name = suffixed(SafeFilename(filename), n)
		path = filepath.Join(dir, name)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("writing upload: %w", err)
	}
	return name, path, nil
}

// ExportDir returns (creating if needed) the document's export directory.
func (l *Layout) ExportDir(documentID string) (string, error) {
	dir := filepath.Join(l.dataDir, "exports", documentID)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	return dir, nil
}

// RemoveAll deletes the entire data root. Hard reset only.
func (l *Layout) RemoveAll() error {
	if err := os.RemoveAll(l.dataDir); err != nil {
		return fmt.Errorf("removing data directory: %w", err)
	}
	return nil
}

// SafeFilename sanitizes an uploaded filename: path separators become
// underscores, every run of characters outside [A-Za-z0-9._-] becomes
// one underscore, and the result is truncated to 180 characters.
// Idempotent, and never produces a name usable for path traversal.
func SafeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, `\`, "_")
	name = strings.ReplaceAll(name, "/", "_")
	name = unsafeRun.ReplaceAllString(name, "_")
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	// Dots alone survive the character filter but would escape the
	// upload directory.
	if name == "" || name == "." || name == ".." {
		return "_"
	}
	return name
}

// suffixed inserts -n before the extension: scan.png -> scan-2.png.
func suffixed(name string, n int) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s-%d%s", base, n, ext)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
