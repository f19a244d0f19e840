package driven

import (
	"context"
	"image"
)

// Detection is a single recognized text span with its confidence in [0,1].
type Detection struct {
	Text       string
	Confidence float64
}

// Recognizer maps a decoded image to a sequence of text detections in
// the backend's own detection order. Implementations must not reorder
// or merge spans; aggregation is the caller's concern.
type Recognizer interface {
	Detect(ctx context.Context, img image.Image) ([]Detection, error)
}

// TextExtractor runs the whole per-image recognition step over a
// stored file: decode, optional enhancement, recognition, aggregation
// into (text, mean confidence). This is the surface the ingestion
// pipeline consumes; Recognizer is the narrower backend beneath it.
type TextExtractor interface {
	RecognizeFile(ctx context.Context, path string, enhance bool) (text string, confidence float64, err error)
}
