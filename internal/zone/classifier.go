// Package zone maps free-text neighborhood references to one of a city's
// fixed macro-zones using token containment scoring. When no local token
// matches, the caller may fall back to the LLM collaborator constrained to
// the same macro-zone list.
package zone

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	rawZoneWeight = 2
	corpusWeight  = 1
)

// Mapping associates one macro-zone with the lowercase, accent-free tokens
// that identify it. Slice order is the tie-break order for inference, so the
// declaration order of a city's mappings must stay stable.
type Mapping struct {
	Zone   string   `yaml:"zone"`
	Tokens []string `yaml:"tokens"`
}

// Match is a successful inference: the macro-zone and the token that
// produced the strongest single score increment.
type Match struct {
	MacroZone string
	Token     string
	Score     int
}

type Classifier struct {
	mappings []Mapping
}

func NewClassifier(mappings []Mapping) *Classifier {
	return &Classifier{mappings: mappings}
}

// MacroZones returns the macro-zone names in declaration order.
func (c *Classifier) MacroZones() []string {
	zones := make([]string, len(c.mappings))
	for i, m := range c.mappings {
		zones[i] = m.Zone
	}
	return zones
}

// Infer scores every macro-zone against the listing's raw zone field and its
// title+description corpus. A token found in the explicit zone field counts
// double a token buried in prose. Ties keep the first mapping in declaration
// order. ok is false when no token matched anywhere.
func (c *Classifier) Infer(rawZone, title, description string) (Match, bool) {
	zoneNorm := Normalize(rawZone)
	corpusNorm := Normalize(title + " " + description)

	var best Match
	for _, m := range c.mappings {
		score := 0
		bestToken := ""
		bestIncrement := 0

		for _, token := range m.Tokens {
			increment := 0
			if zoneNorm != "" && strings.Contains(zoneNorm, token) {
				increment += rawZoneWeight
			}
			if corpusNorm != "" && strings.Contains(corpusNorm, token) {
				increment += corpusWeight
			}
			if increment == 0 {
				continue
			}
			score += increment
			if increment > bestIncrement {
				bestIncrement = increment
				bestToken = token
			}
		}

		if score > best.Score {
			best = Match{MacroZone: m.Zone, Token: bestToken, Score: score}
		}
	}

	return best, best.Score > 0
}

// NeedsFallback reports whether the caller should consult the external
// classification collaborator: the listing named a zone but local inference
// produced nothing.
func (c *Classifier) NeedsFallback(rawZone string, ok bool) bool {
	return strings.TrimSpace(rawZone) != "" && !ok
}

var nonWordRun = regexp.MustCompile(`[^\p{L}\p{N}]+`)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips accents via canonical decomposition, lowercases, turns
// apostrophes into spaces and collapses non-word runs, so "L'Hospitalet"
// and "l hospitalet" compare equal.
func Normalize(s string) string {
	folded, _, err := transform.String(accentStripper, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = strings.NewReplacer("'", " ", "’", " ", "`", " ").Replace(folded)
	folded = nonWordRun.ReplaceAllString(folded, " ")
	return strings.TrimSpace(folded)
}
