package memory

import (
	"context"
	"sync"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/storage"
)

type tripRepository struct {
	mu    sync.RWMutex
	trips []*domain.Trip
	store storage.Store
	key   string
}

func NewTripRepository(store storage.Store, ns storage.Namespace) repository.TripRepository {
	r := &tripRepository{
		store: store,
		key:   ns.Key(storage.KeyTrips),
	}
	storage.LoadJSON(context.Background(), store, r.key, &r.trips)
	return r
}

func (r *tripRepository) persist(ctx context.Context) error {
	return storage.SaveJSON(ctx, r.store, r.key, r.trips)
}

func (r *tripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trips = append(r.trips, trip)
	return r.persist(ctx)
}

func (r *tripRepository) ByID(_ context.Context, id string) (*domain.Trip, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.trips {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

func (r *tripRepository) ForUser(_ context.Context, userID string) []*domain.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Trip
	for _, t := range r.trips {
		if t.HasUser(userID) {
			out = append(out, t)
		}
	}
	return out
}

func (r *tripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.trips {
		if t.ID == trip.ID {
			r.trips[i] = trip
			return r.persist(ctx)
		}
	}
	return domain.ErrTripNotFound
}

func (r *tripRepository) Replace(ctx context.Context, trips []*domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trips = trips
	return r.persist(ctx)
}

func (r *tripRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trips = nil
	return r.store.Delete(ctx, r.key)
}
