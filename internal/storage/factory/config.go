package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Abla25/roomradar/internal/storage"
	"github.com/Abla25/roomradar/internal/storage/es"
	"github.com/Abla25/roomradar/internal/storage/pg"
)

// StorageConfig selects the primary listing store and, optionally, the
// Elasticsearch mirror used for full-text search.
type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads the storage configuration from the environment.
// STORAGE_TYPE defaults to in_mem so local runs need no setup. The
// search mirror is enabled whenever ES_ADDRESSES is set.
func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = storage.InMem
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("postgres connection string is not set")
			return nil, fmt.Errorf("postgres connection string is not set")
		}
	}

	var esCfg *es.ClientConfig
	if addresses := os.Getenv("ES_ADDRESSES"); addresses != "" {
		esCfg = &es.ClientConfig{
			Addresses: strings.Split(addresses, ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if esCfg.IndexName == "" {
			slog.Error("elasticsearch configuration is incomplete", "addresses", esCfg.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: index name is missing")
		}
	}

	return &StorageConfig{
		Type: storageType,
		Pg:   pgCfg,
		Es:   esCfg,
	}, nil
}
