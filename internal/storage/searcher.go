package storage

import (
	"context"

	"github.com/Abla25/roomradar/internal/domain"
)

// SearchResult carries full-text hits with their relevance metadata.
type SearchResult struct {
	Hits         []domain.Listing `json:"hits"`
	MaxScore     float64          `json:"max_score"`
	TotalMatches int64            `json:"total_matches,omitempty"`
}

// Searcher provides full-text search over active listings.
type Searcher interface {
	// Search runs a relevance-ranked query over listing text fields.
	// size caps the number of hits returned.
	Search(ctx context.Context, city, query string, size int) (*SearchResult, error)
}
