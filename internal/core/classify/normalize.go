package classify

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes raw OCR text for matching: lower-case, every
// run of whitespace (including newlines) collapsed to a single space,
// leading and trailing whitespace trimmed. Total and idempotent; empty
// input yields the empty string.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
