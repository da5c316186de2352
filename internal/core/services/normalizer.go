package services

import (
	"regexp"
	"strings"
)

var (
	// whitespaceRuns collapses any run of whitespace to a single space.
	whitespaceRuns = regexp.MustCompile(`\s+`)

	// outsideAlphabet strips everything the extractors never need to see.
	// Hyphens stay in because external transaction ids and cash-power tokens
	// carry them; the rest of the kept punctuation appears in message labels.
	outsideAlphabet = regexp.MustCompile(`[^A-Za-z0-9 .,:()*-]`)
)

// NormalizeText prepares a raw SMS body for pattern matching: trims, collapses
// whitespace and strips characters outside the extraction alphabet. Case is
// preserved; consumers that need case-insensitive matching lower-case their
// own copy. Empty or absent input yields an empty string.
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := outsideAlphabet.ReplaceAllString(raw, "")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
