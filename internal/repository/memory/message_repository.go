package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
)

// messageRepository is memory-only: conversations are regenerated on demo
// login rather than persisted, so there is no storage mirror here.
type messageRepository struct {
	mu       sync.RWMutex
	messages []*domain.Message
}

func NewMessageRepository() repository.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Append(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)
	return nil
}

func (r *messageRepository) ForMatch(_ context.Context, matchID string) []*domain.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Message
	for _, m := range r.messages {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	// Chronological by timestamp, not insertion order: delayed replies can be
	// appended after newer user messages.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *messageRepository) Replace(_ context.Context, msgs []*domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = msgs
	return nil
}

func (r *messageRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = nil
	return nil
}
