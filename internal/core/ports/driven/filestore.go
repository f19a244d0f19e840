package driven

import "io"

// FileStore owns the persisted directory layout: an uploads subtree
// (uploads/<document_id>/<sanitized_filename>), an exports subtree
// (exports/<document_id>/) and the store file, all under one data root.
type FileStore interface {
	// SaveUpload writes one uploaded image's bytes under the
	// document's upload directory, sanitizing the filename. It returns
	// the sanitized name and the stored path. Names that sanitize to
	// the same string within a document are deduplicated with a
	// numeric suffix rather than silently overwritten.
	SaveUpload(documentID, filename string, r io.Reader) (sanitized, storedPath string, err error)

	// ExportDir returns (creating if needed) the document's export
	// directory.
	ExportDir(documentID string) (string, error)

	// DataDir returns the data root.
	DataDir() string

	// RemoveAll deletes the entire data root: uploads, exports and
	// the store file. Used only by the hard reset.
	RemoveAll() error
}
