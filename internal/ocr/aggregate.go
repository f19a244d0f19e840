package ocr

import (
	"context"
	"image"
	"strings"

	"github.com/Quan631/PBL-6/internal/core/ports/driven"
)

// Ensure Aggregator implements the interface.
var _ driven.TextExtractor = (*Aggregator)(nil)

// Aggregator runs a recognizer over an image and folds its detections
// into (text, mean confidence).
type Aggregator struct {
	rec driven.Recognizer
}

// NewAggregator wraps a recognizer.
func NewAggregator(rec driven.Recognizer) *Aggregator {
	return &Aggregator{rec: rec}
}

// Aggregate recognizes one image. With enhance set, the fixed
// preprocessing chain runs first. Detected spans are joined with
// newlines in the recognizer's own detection order; confidence is the
// unweighted mean of per-span confidences. Zero detections yield
// ("", 0) without error; recognizer errors propagate so the caller
// decides whether to skip or retry.
func (a *Aggregator) Aggregate(ctx context.Context, img image.Image, enhance bool) (string, float64, error) {
	if enhance {
		img = Preprocess(img)
	}

	dets, err := a.rec.Detect(ctx, img)
	if err != nil {
		return "", 0, err
	}
	if len(dets) == 0 {
		return "", 0, nil
	}

	parts := make([]string, 0, len(dets))
	var sum float64
	for _, d := range dets {
		parts = append(parts, d.Text)
		sum += d.Confidence
	}

	text := strings.TrimSpace(strings.Join(parts, "\n"))
	return text, sum / float64(len(dets)), nil
}

// RecognizeFile decodes the image at path and aggregates it.
func (a *Aggregator) RecognizeFile(ctx context.Context, path string, enhance bool) (string, float64, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return "", 0, err
	}
	return a.Aggregate(ctx, img, enhance)
}
