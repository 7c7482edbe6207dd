// Package parsing provides text normalization, section detection, and
// readability scoring for raw resume text.
package parsing

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes raw extracted text: runs of whitespace collapse to
// a single space, the result is trimmed and lowercased. PDF extraction tends
// to produce irregular spacing and stray line breaks, so everything downstream
// (skill extraction, keyword matching) works on this form.
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	collapsed := whitespaceRun.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(collapsed))
}

// CountWords returns the number of non-empty whitespace-separated tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
