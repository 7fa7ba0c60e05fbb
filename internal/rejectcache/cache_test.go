package rejectcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T, opts ...Option) *Cache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rejected_urls_cache_test.json")
	return New(path, opts...)
}

func TestAddRejected_RoundTrip(t *testing.T) {
	c := testCache(t)

	require.NoError(t, c.AddRejected("https://example.com/post/1", "not a rental listing"))

	assert.True(t, c.IsRejected("https://example.com/post/1"))
	assert.False(t, c.IsRejected("https://example.com/post/2"))

	reason, ok := c.Reason("https://example.com/post/1")
	require.True(t, ok)
	assert.Equal(t, "not a rental listing", reason)
}

func TestLoad_MissingFileIsEmptyCache(t *testing.T) {
	c := testCache(t)

	assert.False(t, c.IsRejected("https://example.com/anything"))
	assert.Equal(t, 0, c.Len())
}

func TestLoad_CorruptFileFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := New(path)

	assert.Equal(t, 0, c.Len())
	// The cache stays usable.
	require.NoError(t, c.AddRejected("https://example.com/post/1", "spam"))
	assert.True(t, c.IsRejected("https://example.com/post/1"))
}

func TestLoad_PurgesExpiredEntries(t *testing.T) {
	c := testCache(t)

	// Insert with a clock 49 hours in the past, then read with a current one.
	past := time.Now().Add(-49 * time.Hour)
	c.now = func() time.Time { return past }
	require.NoError(t, c.AddRejected("https://example.com/old", "stale"))
	c.now = time.Now

	// Force a reparse so the purge path runs.
	c.loaded = nil

	assert.False(t, c.IsRejected("https://example.com/old"))
	assert.Equal(t, 0, c.Len())
}

func TestLoad_PurgeIsPersisted(t *testing.T) {
	c := testCache(t)

	past := time.Now().Add(-49 * time.Hour)
	c.now = func() time.Time { return past }
	require.NoError(t, c.AddRejected("https://example.com/old", "stale"))
	c.now = time.Now
	c.loaded = nil
	c.Len()

	// A second cache over the same file must not see the expired entry.
	fresh := New(c.path)
	assert.Equal(t, 0, fresh.Len())
}

func TestAddRejected_EvictsOldestHalfAtCapacity(t *testing.T) {
	c := testCache(t, WithMaxEntries(10))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 10; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		c.now = func() time.Time { return at }
		require.NoError(t, c.AddRejected(fmt.Sprintf("https://example.com/post/%d", i), "irrelevant"))
	}
	c.now = time.Now

	require.NoError(t, c.AddRejected("https://example.com/post/new", "irrelevant"))

	// Oldest five evicted, newest five plus the new entry retained.
	assert.Equal(t, 6, c.Len())
	for i := 0; i < 5; i++ {
		assert.False(t, c.IsRejected(fmt.Sprintf("https://example.com/post/%d", i)), "post %d should be evicted", i)
	}
	for i := 5; i < 10; i++ {
		assert.True(t, c.IsRejected(fmt.Sprintf("https://example.com/post/%d", i)), "post %d should survive", i)
	}
	assert.True(t, c.IsRejected("https://example.com/post/new"))
}

func TestExternalFileChangesArePickedUp(t *testing.T) {
	c := testCache(t)
	require.NoError(t, c.AddRejected("https://example.com/post/1", "spam"))

	// Rewrite the file behind the cache's back with a newer mtime.
	file := fileFormat{
		UpdatedAt: time.Now(),
		URLs: map[string]Entry{
			"https://example.com/other": {Reason: "external", Timestamp: time.Now()},
		},
	}
	data, err := json.Marshal(file)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(c.path, data, 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(c.path, future, future))

	assert.True(t, c.IsRejected("https://example.com/other"))
	assert.False(t, c.IsRejected("https://example.com/post/1"))
}

func TestPersistedFormat(t *testing.T) {
	c := testCache(t)
	require.NoError(t, c.AddRejected("https://example.com/post/1", "duplicate"))

	data, err := os.ReadFile(c.path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "updatedAt")
	assert.Contains(t, raw, "urls")

	var urls map[string]Entry
	require.NoError(t, json.Unmarshal(raw["urls"], &urls))
	assert.Equal(t, "duplicate", urls["https://example.com/post/1"].Reason)
}
