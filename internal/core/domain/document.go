package domain

// Document represents one ingestion batch: a set of scanned images with
// their combined recognized text, a classification, and optional export
// artifacts. The ID is the sole join key to images and the search mirror.
type Document struct {
	// ID is the opaque stable identifier, 12 hex characters,
	// generated once at creation and never changed.
	ID string

	// Title is the display string. Empty titles default to
	// "Document <id>" at creation time.
	Title string

	// CreatedAt is the ISO-8601 local timestamp (second precision),
	// immutable after creation.
	CreatedAt string

	// Type is the classification label, assigned at classification
	// time. It is recomputed only by re-running the pipeline.
	Type DocType

	// OCRText is the concatenation of all owned images' recognized
	// text, each segment prefixed by a labeled separator. Used only
	// for display and indexing.
	OCRText string

	// WordPath and ExcelPath reference externally generated export
	// artifacts. Empty when export failed or was skipped.
	WordPath  string
	ExcelPath string
}

// DisplayTitle returns the title, or the "Document <id>" default when empty.
func (d Document) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return "Document " + d.ID
}

// Image is one uploaded file belonging to exactly one Document.
type Image struct {
	// ID is the auto-assigned monotonic surrogate key. Ascending ID
	// order is the display and concatenation order.
	ID int64

	// DocumentID references the owning Document.
	DocumentID string

	// Filename is the sanitized original name.
	Filename string

	// StoredPath is the on-disk location of the image bytes,
	// unique per image.
	StoredPath string

	// OCRText is the per-image recognized text. Empty until the
	// recognition step fills it in; it may be updated in place
	// without changing ID.
	OCRText string
}

// TypeCount is one row of the count-by-type statistic. Documents with no
// recorded type are reported under the literal label "Unknown".
type TypeCount struct {
	Label string
	Count int
}

// CreatedAtLayout is the timestamp format for Document.CreatedAt.
// It matches ISO-8601 at second precision, local time, no zone suffix.
const CreatedAtLayout = "2006-01-02T15:04:05"
