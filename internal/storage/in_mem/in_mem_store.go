package in_mem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/internal/storage"
)

// InMemStore keeps listings in a map, mainly for tests and local runs.
type InMemStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Listing
}

func NewInMemStore() *InMemStore {
	return &InMemStore{
		storage: make(map[uuid.UUID]domain.Listing),
	}
}

func (s *InMemStore) Create(_ context.Context, listing domain.Listing) (uuid.UUID, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	if listing.Status == "" {
		listing.Status = domain.StatusActive
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now()
	}
	s.storage[listing.ID] = listing
	return listing.ID, nil
}

func (s *InMemStore) FindByLink(_ context.Context, link string) (*domain.Listing, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	var found *domain.Listing
	for _, l := range s.storage {
		if l.Link != link {
			continue
		}
		if found == nil || l.CreatedAt.After(found.CreatedAt) {
			l := l
			found = &l
		}
	}
	if found == nil {
		return nil, storage.ErrNotFound
	}
	return found, nil
}

func (s *InMemStore) QueryActive(_ context.Context, city string) ([]domain.Listing, error) {
	return s.query(city, true), nil
}

func (s *InMemStore) QueryAll(_ context.Context, city string) ([]domain.Listing, error) {
	return s.query(city, false), nil
}

func (s *InMemStore) SetStatus(_ context.Context, id uuid.UUID, status domain.Status) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	listing, ok := s.storage[id]
	if !ok {
		return storage.ErrNotFound
	}
	listing.Status = status
	s.storage[id] = listing
	return nil
}

func (s *InMemStore) IncrementReports(_ context.Context, link string) (int, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for id, l := range s.storage {
		if l.Link == link && l.IsActive() {
			l.Reports++
			s.storage[id] = l
			return l.Reports, nil
		}
	}
	return 0, storage.ErrNotFound
}

func (s *InMemStore) query(city string, activeOnly bool) []domain.Listing {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	listings := make([]domain.Listing, 0, len(s.storage))
	for _, l := range s.storage {
		if city != "" && l.City != city {
			continue
		}
		if activeOnly && !l.IsActive() {
			continue
		}
		listings = append(listings, l)
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings
}
