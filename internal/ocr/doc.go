// Package ocr turns raw per-image recognition output into a single
// confidence-scored text blob, and optionally preprocesses images to
// improve recognition of low-quality scans.
//
// The aggregation contract (one text, one scalar confidence) is what
// decouples the ingestion pipeline from any particular OCR backend's
// native data shape.
package ocr
