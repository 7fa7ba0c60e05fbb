package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/internal/storage"
)

type ListingStore struct {
	db *pgxpool.Pool
}

func NewListingStore(pool *ConnectionPool) (*ListingStore, error) {
	return &ListingStore{db: pool.conn}, nil
}

const createListingsTable = `
    CREATE TABLE IF NOT EXISTS listings (
        id                 UUID PRIMARY KEY,
        link               TEXT NOT NULL,
        title              TEXT NOT NULL,
        overview           TEXT NOT NULL DEFAULT '',
        description        TEXT NOT NULL DEFAULT '',
        price              TEXT NOT NULL DEFAULT '',
        rooms              TEXT NOT NULL DEFAULT '',
        zone               TEXT NOT NULL DEFAULT '',
        macro_zone         TEXT NOT NULL DEFAULT '',
        reliability        INT NOT NULL DEFAULT 0,
        reliability_reason TEXT NOT NULL DEFAULT '',
        status             TEXT NOT NULL DEFAULT 'active',
        reports            INT NOT NULL DEFAULT 0,
        image_url          TEXT NOT NULL DEFAULT '',
        published_at       TIMESTAMPTZ,
        created_at         TIMESTAMPTZ NOT NULL,
        city               TEXT NOT NULL DEFAULT ''
    );
    CREATE INDEX IF NOT EXISTS idx_listings_city_status ON listings (city, status, created_at DESC);
    CREATE INDEX IF NOT EXISTS idx_listings_link ON listings (link);
`

// EnsureSchema creates the listings table when it does not exist yet.
func (s *ListingStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createListingsTable); err != nil {
		return fmt.Errorf("failed to create listings schema: %w", err)
	}
	return nil
}

func (s *ListingStore) Create(ctx context.Context, listing domain.Listing) (uuid.UUID, error) {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	if listing.Status == "" {
		listing.Status = domain.StatusActive
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now()
	}

	cmd := `
        INSERT INTO listings (id, link, title, overview, description, price, rooms, zone,
            macro_zone, reliability, reliability_reason, status, reports, image_url,
            published_at, created_at, city)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		listing.ID,
		listing.Link,
		listing.Title,
		listing.Overview,
		listing.Description,
		listing.Price,
		listing.Rooms,
		listing.Zone,
		listing.MacroZone,
		listing.Reliability,
		listing.ReliabilityReason,
		listing.Status,
		listing.Reports,
		listing.ImageURL,
		nullableTime(listing.PublishedAt),
		listing.CreatedAt,
		listing.City,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert listing: %w", err)
	}

	return id, nil
}

const selectListing = `
    SELECT id, link, title, overview, description, price, rooms, zone, macro_zone,
        reliability, reliability_reason, status, reports, image_url,
        published_at, created_at, city
    FROM listings
`

func (s *ListingStore) FindByLink(ctx context.Context, link string) (*domain.Listing, error) {
	row := s.db.QueryRow(ctx, selectListing+`
        WHERE link = $1
        ORDER BY created_at DESC
        LIMIT 1;
    `, link)

	listing, err := scanListing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query listing by link: %w", err)
	}
	return listing, nil
}

func (s *ListingStore) QueryActive(ctx context.Context, city string) ([]domain.Listing, error) {
	return s.query(ctx, selectListing+`
        WHERE city = $1 AND status = $2
        ORDER BY created_at DESC;
    `, city, domain.StatusActive)
}

func (s *ListingStore) QueryAll(ctx context.Context, city string) ([]domain.Listing, error) {
	return s.query(ctx, selectListing+`
        WHERE city = $1
        ORDER BY created_at DESC;
    `, city)
}

func (s *ListingStore) SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	tag, err := s.db.Exec(ctx, `UPDATE listings SET status = $1 WHERE id = $2;`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update listing status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *ListingStore) IncrementReports(ctx context.Context, link string) (int, error) {
	var reports int
	err := s.db.QueryRow(ctx, `
        UPDATE listings SET reports = reports + 1
        WHERE link = $1 AND status = $2
        RETURNING reports;
    `, link, domain.StatusActive).Scan(&reports)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment reports: %w", err)
	}
	return reports, nil
}

func (s *ListingStore) query(ctx context.Context, sql string, args ...any) ([]domain.Listing, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *listing)
	}
	return listings, rows.Err()
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	var publishedAt *time.Time
	err := row.Scan(
		&l.ID,
		&l.Link,
		&l.Title,
		&l.Overview,
		&l.Description,
		&l.Price,
		&l.Rooms,
		&l.Zone,
		&l.MacroZone,
		&l.Reliability,
		&l.ReliabilityReason,
		&l.Status,
		&l.Reports,
		&l.ImageURL,
		&publishedAt,
		&l.CreatedAt,
		&l.City,
	)
	if err != nil {
		return nil, err
	}
	if publishedAt != nil {
		l.PublishedAt = *publishedAt
	}
	return &l, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
