package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/internal/storage/in_mem"
)

func TestWrite_PublishesActiveListings(t *testing.T) {
	// Arrange
	store := in_mem.NewInMemStore()
	ctx := context.Background()

	_, err := store.Create(ctx, domain.Listing{
		Link: "https://x.com/1", Title: "Room", City: "barcelona",
		Status: domain.StatusActive, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.Listing{
		Link: "https://x.com/2", Title: "Gone", City: "barcelona",
		Status: domain.StatusExpired, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "public", "data_barcelona.json")

	// Act
	snapshot, err := Write(ctx, store, "barcelona", path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "barcelona", decoded.City)
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, "https://x.com/1", decoded.Results[0].Link)
	assert.False(t, decoded.GeneratedAt.IsZero())
}

func TestWrite_EmptyCityProducesEmptyResults(t *testing.T) {
	// Arrange
	store := in_mem.NewInMemStore()
	path := filepath.Join(t.TempDir(), "data_roma.json")

	// Act
	snapshot, err := Write(context.Background(), store, "roma", path)

	// Assert: results is an empty array, not null
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"results": []`)
}
