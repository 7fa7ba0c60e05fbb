package factory

import (
	"context"

	"github.com/Abla25/roomradar/internal/storage"
	"github.com/Abla25/roomradar/internal/storage/es"
	"github.com/Abla25/roomradar/internal/storage/in_mem"
	"github.com/Abla25/roomradar/internal/storage/pg"
)

// NewListingStore builds the primary store named by the config.
func NewListingStore(ctx context.Context, cfg *StorageConfig) (storage.ListingStore, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, err
		}
		store, err := pg.NewListingStore(pool)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case storage.InMem:
		return in_mem.NewInMemStore(), nil
	default:
		return nil, storage.ErrUnsupportedStore
	}
}

// NewSearchMirror builds the optional Elasticsearch indexer and searcher.
// Both are nil when the config carries no Elasticsearch section.
func NewSearchMirror(ctx context.Context, cfg *StorageConfig) (*es.Indexer, storage.Searcher, error) {
	if cfg.Es == nil {
		return nil, nil, nil
	}
	indexer, err := es.NewIndexer(ctx, *cfg.Es)
	if err != nil {
		return nil, nil, err
	}
	searcher, err := es.NewSearcher(*cfg.Es)
	if err != nil {
		return nil, nil, err
	}
	return indexer, searcher, nil
}
