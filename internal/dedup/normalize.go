package dedup

import (
	"regexp"
	"strings"
)

var (
	urlToken = regexp.MustCompile(`https?://\S+`)
	nonWord  = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
)

// normalizeText lowercases, strips URL tokens, collapses every non-word run
// to a single space and trims. Two descriptions differing only in whitespace
// or punctuation normalize to the same string.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = urlToken.ReplaceAllString(s, " ")
	s = nonWord.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
