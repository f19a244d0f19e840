// Package tesseract adapts the gosseract client to the Recognizer
// port. It is the default OCR backend; tests use scripted doubles.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/Quan631/PBL-6/internal/core/ports/driven"
)

// Ensure Engine implements the port.
var _ driven.Recognizer = (*Engine)(nil)

// Engine recognizes text through a Tesseract client. Each call uses a
// fresh client; gosseract clients are not safe for reuse across images.
type Engine struct {
	clientFactory func() *gosseract.Client
	languages     []string
}

// New constructs an engine with language hints ("vie", "eng", ...).
func New(languages ...string) *Engine {
	return &Engine{
		clientFactory: gosseract.NewClient,
		languages:     languages,
	}
}

// Detect runs line-level recognition on a decoded image. Detections
// keep Tesseract's own ordering; confidences are scaled to [0,1].
func (e *Engine) Detect(ctx context.Context, img image.Image) ([]driven.Detection, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	if len(e.languages) > 0 {
		if err := c.SetLanguage(e.languages...); err != nil {
			return nil, fmt.Errorf("set languages: %w", err)
		}
	}

	boxes, err := c.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("get bounding boxes: %w", err)
	}

	dets := make([]driven.Detection, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		dets = append(dets, driven.Detection{
			Text:       text,
			Confidence: box.Confidence / 100,
		})
	}
	return dets, nil
}
