package memory

import (
	"context"
	"sync"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
)

type reviewRepository struct {
	mu      sync.RWMutex
	reviews []*domain.Review
}

func NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Append(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews = append(r.reviews, review)
	return nil
}

func (r *reviewRepository) ForTrip(_ context.Context, tripID string) []*domain.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.TripID == tripID {
			out = append(out, rv)
		}
	}
	return out
}

func (r *reviewRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews = nil
	return nil
}
