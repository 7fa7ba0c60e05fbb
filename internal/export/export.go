// Package export writes the public JSON snapshot served to the
// frontend.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/internal/storage"
)

// Snapshot is the published shape of the active listings of a city.
type Snapshot struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	City        string           `json:"city"`
	Count       int              `json:"count"`
	Results     []domain.Listing `json:"results"`
}

// Write dumps the active listings of a city to path. The file is
// written to a temp name first and renamed so readers never see a
// partial snapshot.
func Write(ctx context.Context, store storage.ListingStore, city, path string) (*Snapshot, error) {
	listings, err := store.QueryActive(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to load active listings: %w", err)
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	snapshot := &Snapshot{
		GeneratedAt: time.Now().UTC(),
		City:        city,
		Count:       len(listings),
		Results:     listings,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return nil, fmt.Errorf("failed to publish snapshot: %w", err)
	}

	slog.Info("snapshot written", "city", city, "path", path, "count", snapshot.Count)
	return snapshot, nil
}
