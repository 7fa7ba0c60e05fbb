package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Abla25/roomradar/internal/domain"
)

// ErrNotFound is returned when a lookup matches no listing.
var ErrNotFound = errors.New("listing not found")

// ListingStore persists listings and supports the lifecycle operations
// the ingest pipeline and the API need.
type ListingStore interface {
	// Create inserts a new listing, assigning an ID when none is set.
	Create(ctx context.Context, listing domain.Listing) (uuid.UUID, error)
	// FindByLink returns the listing with the given link or ErrNotFound.
	FindByLink(ctx context.Context, link string) (*domain.Listing, error)
	// QueryActive returns the active listings of a city, newest first.
	QueryActive(ctx context.Context, city string) ([]domain.Listing, error)
	// QueryAll returns every listing of a city regardless of status.
	QueryAll(ctx context.Context, city string) ([]domain.Listing, error)
	// SetStatus updates the lifecycle status of a listing.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	// IncrementReports bumps the report counter of the listing with the
	// given link and returns the new count.
	IncrementReports(ctx context.Context, link string) (int, error)
}

type Type string

const (
	PG    Type = "pg"
	InMem      = "in_mem"
)

type StoreError string

const (
	ErrUnsupportedStore StoreError = "unsupported store type"
)

func (e StoreError) Error() string {
	return string(e)
}
