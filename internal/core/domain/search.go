package domain

// DocumentSearchResult carries document search hits plus whether the
// substring-scan fallback served the query instead of the full-text
// mirror. Degradation is part of the result shape, never an error.
type DocumentSearchResult struct {
	Documents []Document
	Degraded  bool
}

// ImageSearchResult is the image-search counterpart of
// DocumentSearchResult.
type ImageSearchResult struct {
	Images   []Image
	Degraded bool
}
