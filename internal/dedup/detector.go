// Package dedup decides whether an incoming listing is the same real-world
// ad as one already stored, despite paraphrasing. The similarity measure is
// lexical (token-set ratio over normalized text), not semantic.
package dedup

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/pkg/utils"
)

const (
	// DefaultThreshold is the score at or above which a candidate is
	// treated as a duplicate of a stored listing.
	DefaultThreshold = 0.85

	// minComparableLength guards against false positives on generic short
	// phrases: normalized strings under this length never score.
	minComparableLength = 10

	// lengthBonus is added when the two normalized strings are within 10%
	// of each other in length, the typical shape of copy-pasted reposts.
	lengthBonus = 0.05

	maxCacheEntries = 1000
)

// pairKey identifies an unordered pair of raw strings.
type pairKey struct {
	a, b string
}

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Detector computes pairwise similarity with memoization of both the
// per-string normalization and the per-pair score. Caches are owned by the
// Detector, not package state, so runs stay isolated.
type Detector struct {
	norms  *boundedCache[string, string]
	scores *boundedCache[pairKey, float64]
}

func NewDetector() *Detector {
	return &Detector{
		norms:  newBoundedCache[string, string](maxCacheEntries),
		scores: newBoundedCache[pairKey, float64](maxCacheEntries),
	}
}

func (d *Detector) normalize(s string) string {
	if n, ok := d.norms.Get(s); ok {
		return n
	}
	n := normalizeText(s)
	d.norms.Put(s, n)
	return n
}

// Similarity scores two raw descriptions in [0,1]. Symmetric: the order of
// the arguments never changes the result.
func (d *Detector) Similarity(a, b string) float64 {
	key := newPairKey(a, b)
	if score, ok := d.scores.Get(key); ok {
		return score
	}

	score := d.compute(a, b)
	d.scores.Put(key, score)
	return score
}

func (d *Detector) compute(a, b string) float64 {
	na := d.normalize(a)
	nb := d.normalize(b)

	if len(na) < minComparableLength || len(nb) < minComparableLength {
		return 0
	}

	score := float64(fuzzy.TokenSetRatio(na, nb)) / 100

	longer := len(na)
	shorter := len(nb)
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	if (longer-shorter)*10 < longer {
		score += lengthBonus
		if score > 1.0 {
			score = 1.0
		}
	}

	return utils.RoundDecimal(score, 4)
}

// FindBestMatch scans the corpus for the stored listing most similar to the
// candidate description. The corpus is walked most-recent-first and the scan
// exits early at the first score reaching the threshold: any match at or
// above it triggers the same duplicate handling regardless of which one wins.
// Returns (nil, 0) for an empty corpus or when nothing overlaps.
func (d *Detector) FindBestMatch(corpus []domain.Listing, description string, threshold float64) (*domain.Listing, float64) {
	if len(corpus) == 0 {
		return nil, 0
	}

	ordered := make([]domain.Listing, len(corpus))
	copy(ordered, corpus)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	var (
		best      *domain.Listing
		bestScore float64
	)
	for i := range ordered {
		score := d.Similarity(ordered[i].Description, description)
		if score > bestScore {
			best = &ordered[i]
			bestScore = score
		}
		if score >= threshold {
			break
		}
	}

	if bestScore == 0 {
		return nil, 0
	}
	return best, bestScore
}
