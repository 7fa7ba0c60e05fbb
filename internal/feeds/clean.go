package feeds

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripTags  = bluemonday.StrictPolicy()
	whitespace = regexp.MustCompile(`\s+`)
	lineBreaks = regexp.MustCompile(`(?i)<br\s*/?>|</p>`)
)

// CleanHTML reduces feed markup to plain text: explicit breaks become
// newlines, remaining tags are stripped, entities unescaped and whitespace
// collapsed.
func CleanHTML(s string) string {
	if s == "" {
		return s
	}
	s = lineBreaks.ReplaceAllString(s, "\n")
	s = stripTags.Sanitize(s)
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespace.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	return strings.Trim(s, "\n ")
}
