// Package memory implements the repositories as in-memory collections
// mirrored into the key-value store after every mutation and reloaded from it
// at construction time.
package memory

import (
	"context"
	"sync"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/storage"
)

type swipeRepository struct {
	mu     sync.RWMutex
	swipes []*domain.Swipe
	store  storage.Store
	key    string
}

func NewSwipeRepository(store storage.Store, ns storage.Namespace) repository.SwipeRepository {
	r := &swipeRepository{
		store: store,
		key:   ns.Key(storage.KeySwipes),
	}
	storage.LoadJSON(context.Background(), store, r.key, &r.swipes)
	return r
}

func (r *swipeRepository) persist(ctx context.Context) error {
	return storage.SaveJSON(ctx, r.store, r.key, r.swipes)
}

func (r *swipeRepository) Append(ctx context.Context, swipe *domain.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.swipes = append(r.swipes, swipe)
	return r.persist(ctx)
}

func (r *swipeRepository) BySwiper(_ context.Context, swiperID string) []*domain.Swipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Swipe
	for _, s := range r.swipes {
		if s.SwiperID == swiperID {
			out = append(out, s)
		}
	}
	return out
}

func (r *swipeRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.swipes = nil
	return r.store.Delete(ctx, r.key)
}
