package memory

import (
	"context"
	"sync"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/storage"
)

type pointsRepository struct {
	mu      sync.RWMutex
	entries []*domain.PointsLedgerEntry
	store   storage.Store
	key     string
}

func NewPointsRepository(store storage.Store, ns storage.Namespace) repository.PointsRepository {
	r := &pointsRepository{
		store: store,
		key:   ns.Key(storage.KeyPoints),
	}
	storage.LoadJSON(context.Background(), store, r.key, &r.entries)
	return r
}

func (r *pointsRepository) persist(ctx context.Context) error {
	return storage.SaveJSON(ctx, r.store, r.key, r.entries)
}

func (r *pointsRepository) Append(ctx context.Context, entry *domain.PointsLedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return r.persist(ctx)
}

func (r *pointsRepository) ForUser(_ context.Context, userID string) []*domain.PointsLedgerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.PointsLedgerEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (r *pointsRepository) Replace(ctx context.Context, entries []*domain.PointsLedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = entries
	return r.persist(ctx)
}

func (r *pointsRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	return r.store.Delete(ctx, r.key)
}
