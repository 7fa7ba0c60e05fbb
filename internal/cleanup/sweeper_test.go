package cleanup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/internal/storage/in_mem"
)

func fastSweeper(store *in_mem.InMemStore, opts ...Option) *Sweeper {
	opts = append([]Option{WithProbeInterval(time.Microsecond)}, opts...)
	return NewSweeper(store, opts...)
}

func seed(t *testing.T, store *in_mem.InMemStore, link string) {
	t.Helper()
	_, err := store.Create(context.Background(), domain.Listing{
		Link: link, City: "barcelona", Status: domain.StatusActive,
	})
	require.NoError(t, err)
}

func TestRun_ExpiresDeadListings(t *testing.T) {
	// Arrange: one live page, one gone
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dead" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := in_mem.NewInMemStore()
	seed(t, store, srv.URL+"/alive")
	seed(t, store, srv.URL+"/dead")
	sweeper := fastSweeper(store)

	// Act
	report, err := sweeper.Run(context.Background(), "barcelona")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 1, report.Dead)
	assert.Equal(t, 1, report.Expired)

	active, err := store.QueryActive(context.Background(), "barcelona")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, srv.URL+"/alive", active[0].Link)
}

func TestRun_DryRunKeepsListings(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer srv.Close()

	store := in_mem.NewInMemStore()
	seed(t, store, srv.URL+"/gone")
	sweeper := fastSweeper(store, WithDryRun())

	// Act
	report, err := sweeper.Run(context.Background(), "barcelona")

	// Assert: dead link counted but nothing expired
	require.NoError(t, err)
	assert.Equal(t, 1, report.Dead)
	assert.Equal(t, 0, report.Expired)

	active, err := store.QueryActive(context.Background(), "barcelona")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestRun_HeadRejectedFallsBackToGet(t *testing.T) {
	// Arrange: server that refuses HEAD but 404s on GET
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store := in_mem.NewInMemStore()
	seed(t, store, srv.URL+"/x")
	sweeper := fastSweeper(store)

	// Act
	report, err := sweeper.Run(context.Background(), "barcelona")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.Expired)
}

func TestRun_RedirectToLoginCountsDead(t *testing.T) {
	// Arrange: the post page bounces to a login wall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/moved" {
			http.Redirect(w, r, "/elsewhere", http.StatusFound)
			return
		}
		http.Redirect(w, r, "/login?next=post", http.StatusFound)
	}))
	defer srv.Close()

	store := in_mem.NewInMemStore()
	seed(t, store, srv.URL+"/walled")
	seed(t, store, srv.URL+"/moved")
	sweeper := fastSweeper(store)

	// Act
	report, err := sweeper.Run(context.Background(), "barcelona")

	// Assert: only the login redirect counts dead
	require.NoError(t, err)
	assert.Equal(t, 1, report.Dead)
	assert.Equal(t, 1, report.Expired)
}

func TestRun_KnownBadPathSkipsProbe(t *testing.T) {
	// Arrange: unreachable host, but the path alone condemns the link
	store := in_mem.NewInMemStore()
	seed(t, store, "http://127.0.0.1:1/checkpoint/12345")
	sweeper := fastSweeper(store)

	// Act
	report, err := sweeper.Run(context.Background(), "barcelona")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.Dead)
	assert.Equal(t, 1, report.Expired)
}

func TestTriageLink(t *testing.T) {
	tests := []struct {
		name       string
		link       string
		dead       bool
		suspicious bool
	}{
		{"normal post", "https://example.com/groups/123/posts/1234567890123456", false, false},
		{"login path", "https://example.com/login", true, false},
		{"sorry path", "https://example.com/sorry/", true, false},
		{"short post id", "https://example.com/groups/g/posts/123", false, true},
		{"overlong post id", "https://example.com/posts/123456789012345678901", false, true},
		{"help path", "https://example.com/help/contact", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dead, suspicious := triageLink(tt.link)
			assert.Equal(t, tt.dead, dead)
			assert.Equal(t, tt.suspicious, suspicious)
		})
	}
}

func TestRun_NetworkErrorKeepsListing(t *testing.T) {
	// Arrange: unreachable host
	store := in_mem.NewInMemStore()
	seed(t, store, "http://127.0.0.1:1/x")
	sweeper := fastSweeper(store)

	// Act
	report, err := sweeper.Run(context.Background(), "barcelona")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, report.Dead)

	active, err := store.QueryActive(context.Background(), "barcelona")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
