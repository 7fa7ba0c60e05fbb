package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"

	"github.com/Abla25/roomradar/internal/domain"
)

// Indexer mirrors listings into Elasticsearch for full-text search.
type Indexer struct {
	client    *elasticsearch.TypedClient
	indexName string
	config    ClientConfig
}

func NewIndexer(ctx context.Context, config ClientConfig) (*Indexer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	indexer := &Indexer{
		client:    client,
		indexName: config.IndexName,
		config:    config,
	}

	if err := indexer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return indexer, nil
}

func (e *Indexer) Index(ctx context.Context, listing domain.Listing) error {
	doc := toDocument(listing)

	res, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	slog.Info("listing indexed", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return nil
}

func (e *Indexer) IndexBulk(ctx context.Context, listings []domain.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    4,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed int64

	for _, listing := range listings {
		doc := toDocument(listing)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed++
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.ID,
				Body:       bytes.NewReader(docBytes),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					successful++
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed++
					if err != nil {
						slog.Error("failed to index document", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("failed to index document", "type", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			return fmt.Errorf("failed to add document to bulk indexer: %w", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("bulk indexing finished", "successful", successful, "failed", failed, "index", e.indexName)
	return nil
}

// SetStatus updates the status field of an indexed listing in place.
func (e *Indexer) SetStatus(ctx context.Context, id string, status domain.Status) error {
	patch, err := json.Marshal(map[string]any{"status": status})
	if err != nil {
		return fmt.Errorf("failed to marshal status patch: %w", err)
	}

	_, err = e.client.Update(e.indexName, id).Doc(json.RawMessage(patch)).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}
	return nil
}

func (e *Indexer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("index already exists", "index", e.indexName)
		return nil
	}

	settings := types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				"listing_analyzer": types.StandardAnalyzer{
					Stopwords: []string{"_none_"},
				},
			},
		},
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"link":         types.NewKeywordProperty(),
			"title":        e.createTextPropertyWithKeyword("listing_analyzer"),
			"overview":     e.createTextProperty("listing_analyzer"),
			"description":  e.createTextProperty("listing_analyzer"),
			"price":        types.NewKeywordProperty(),
			"rooms":        types.NewKeywordProperty(),
			"zone":         e.createTextPropertyWithKeyword("listing_analyzer"),
			"macro_zone":   types.NewKeywordProperty(),
			"reliability":  types.NewIntegerNumberProperty(),
			"status":       types.NewKeywordProperty(),
			"reports":      types.NewIntegerNumberProperty(),
			"image_url":    types.NewKeywordProperty(),
			"published_at": types.NewDateProperty(),
			"created_at":   types.NewDateProperty(),
			"city":         types.NewKeywordProperty(),
			"indexed_at":   types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Settings(&settings).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("index created", "index", e.indexName)
	return nil
}

func (e *Indexer) createTextProperty(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	return textProp
}

func (e *Indexer) createTextPropertyWithKeyword(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
