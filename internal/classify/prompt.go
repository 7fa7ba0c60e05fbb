package classify

import (
	"fmt"
	"strings"

	"github.com/Abla25/roomradar/internal/domain"
)

const classifySystemPrompt = `You review posts scraped from housing feeds and decide whether each
one advertises a room or apartment for rent. You answer with JSON only, no prose and no markdown.

For every post return an object with these keys:
  "relevant": boolean, true only for actual rental listings (offers, not requests)
  "title": short cleaned-up title
  "overview": one-sentence summary
  "description": the full listing text, cleaned of boilerplate
  "price": monthly price as written, empty string if absent
  "rooms": number of rooms as written, empty string if absent
  "zone": the neighbourhood or area named in the post, empty string if absent
  "reliability": integer 0 to 5, how trustworthy the listing looks
  "reliability_reason": one short sentence explaining the score
  "published_at": the publication date as given, empty string if absent

Return a JSON array with exactly one object per post, in the same order as the input.`

const zoneSystemPrompt = `You assign housing listings to a macro-zone of the city. Answer with the
single best matching zone name from the allowed list, nothing else. If none fits, answer "none".`

func buildClassifyPrompt(posts []domain.RawPost) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Classify the following %d posts.\n", len(posts))
	for i, p := range posts {
		fmt.Fprintf(&b, "\n--- Post %d ---\nTitle: %s\nLink: %s\nPublished: %s\n%s\n",
			i+1, p.Title, p.Link, p.Published, p.Summary)
	}
	return b.String()
}

func buildZonePrompt(rawZone, title, description string, zones []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Allowed zones: %s\n\n", strings.Join(zones, ", "))
	if rawZone != "" {
		fmt.Fprintf(&b, "Stated zone: %s\n", rawZone)
	}
	fmt.Fprintf(&b, "Title: %s\n\n%s\n", title, description)
	return b.String()
}

// extractJSON pulls the first JSON array or object out of a model reply,
// tolerating markdown fences and surrounding prose.
func extractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			s = strings.TrimSpace(rest[:end])
		}
	}

	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return "", fmt.Errorf("no json payload in reply")
	}
	var end int
	if s[start] == '[' {
		end = strings.LastIndex(s, "]")
	} else {
		end = strings.LastIndex(s, "}")
	}
	if end < start {
		return "", fmt.Errorf("unterminated json payload in reply")
	}
	return s[start : end+1], nil
}
