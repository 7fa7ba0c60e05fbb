package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/operator"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"

	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/internal/storage"
)

// Searcher runs relevance-ranked queries over active listings.
type Searcher struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewSearcher(config ClientConfig) (*Searcher, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Searcher{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

// Search performs a multi_match query over the listing text fields,
// restricted to active listings of the given city.
func (r *Searcher) Search(ctx context.Context, city, query string, size int) (*storage.SearchResult, error) {
	or := operator.Or
	multiMatch := &types.MultiMatchQuery{
		Query:    query,
		Fields:   []string{"title^2.0", "overview^1.5", "description", "zone^1.5"},
		Operator: &or,
	}

	filters := []types.Query{
		{Term: map[string]types.TermQuery{"status": {Value: string(domain.StatusActive)}}},
	}
	if city != "" {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{"city": {Value: city}},
		})
	}

	sortOrderDesc := sortorder.Desc
	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Must:   []types.Query{{MultiMatch: multiMatch}},
				Filter: filters,
			},
		}).
		Size(size).
		TrackScores(true).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"_score": {Order: &sortOrderDesc},
			},
		}).
		Do(ctx)
	if err != nil {
		slog.Error("elasticsearch query failed", "error", err, "query", query)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	listings, err := mapHits(res.Hits.Hits)
	if err != nil {
		return nil, fmt.Errorf("failed to map search results: %w", err)
	}

	var maxScore float64
	if res.Hits.MaxScore != nil {
		maxScore = float64(*res.Hits.MaxScore)
	}

	slog.Info("search results fetched",
		"query", query,
		"city", city,
		"total_matches", res.Hits.Total.Value,
		"returned_count", len(listings))

	return &storage.SearchResult{
		Hits:         listings,
		MaxScore:     maxScore,
		TotalMatches: res.Hits.Total.Value,
	}, nil
}

func mapHits(hits []types.Hit) ([]domain.Listing, error) {
	listings := make([]domain.Listing, 0, len(hits))
	for _, hit := range hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		listings = append(listings, doc.toListing())
	}
	return listings, nil
}
