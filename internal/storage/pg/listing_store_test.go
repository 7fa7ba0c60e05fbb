package pg

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/internal/storage"
	pkgtesting "github.com/Abla25/roomradar/pkg/testing"
)

var (
	testCtx   context.Context
	testPool  *ConnectionPool
	testStore *ListingStore
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "roomradar_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}

	testStore, err = NewListingStore(testPool)
	if err != nil {
		panic(err)
	}
	if err := testStore.EnsureSchema(testCtx); err != nil {
		panic(err)
	}

	// os.Exit skips deferred calls, so tear down explicitly before exiting.
	code := m.Run()

	testPool.Close()
	if err := testcontainers.TerminateContainer(pg.Container); err != nil {
		slog.Error("failed to terminate postgres container", "error", err)
	}

	os.Exit(code)
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE listings")
	if err != nil {
		t.Fatalf("failed to truncate table: %v", err)
	}
}

func testListing(link string) domain.Listing {
	return domain.Listing{
		Link:        link,
		Title:       "Room near center",
		Description: "Bright room, bills included",
		Status:      domain.StatusActive,
		City:        "barcelona",
		CreatedAt:   time.Now(),
	}
}

func TestCreateAndFindByLink(t *testing.T) {
	truncateTable(t)

	// Arrange
	listing := testListing("https://x.com/1")
	listing.PublishedAt = time.Now().Add(-time.Hour)

	// Act
	id, err := testStore.Create(testCtx, listing)
	require.NoError(t, err)

	found, err := testStore.FindByLink(testCtx, "https://x.com/1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "Room near center", found.Title)
	assert.False(t, found.PublishedAt.IsZero())
}

func TestFindByLink_NotFound(t *testing.T) {
	truncateTable(t)

	_, err := testStore.FindByLink(testCtx, "https://nowhere.com")

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestQueryActive_ExcludesExpiredAndOtherCities(t *testing.T) {
	truncateTable(t)

	// Arrange
	expired := testListing("https://x.com/expired")
	expired.Status = domain.StatusExpired
	other := testListing("https://x.com/roma")
	other.City = "roma"
	active := testListing("https://x.com/active")

	for _, l := range []domain.Listing{expired, other, active} {
		_, err := testStore.Create(testCtx, l)
		require.NoError(t, err)
	}

	// Act
	listings, err := testStore.QueryActive(testCtx, "barcelona")

	// Assert
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "https://x.com/active", listings[0].Link)
}

func TestSetStatus(t *testing.T) {
	truncateTable(t)

	// Arrange
	id, err := testStore.Create(testCtx, testListing("https://x.com/1"))
	require.NoError(t, err)

	// Act
	err = testStore.SetStatus(testCtx, id, domain.StatusExpired)

	// Assert
	require.NoError(t, err)
	found, err := testStore.FindByLink(testCtx, "https://x.com/1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, found.Status)
}

func TestIncrementReports_OnlyCountsActiveListings(t *testing.T) {
	truncateTable(t)

	// Arrange
	id, err := testStore.Create(testCtx, testListing("https://x.com/1"))
	require.NoError(t, err)

	// Act
	first, err := testStore.IncrementReports(testCtx, "https://x.com/1")
	require.NoError(t, err)

	require.NoError(t, testStore.SetStatus(testCtx, id, domain.StatusExpired))
	_, err = testStore.IncrementReports(testCtx, "https://x.com/1")

	// Assert
	assert.Equal(t, 1, first)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
