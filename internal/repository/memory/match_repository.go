package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/storage"
)

// matchRepository keys matches by their sorted pair key, so a second thread
// for the same pair cannot be inserted in the first place. Persisted
// snapshots from older versions may still contain duplicates; Normalize
// collapses them on load.
type matchRepository struct {
	mu     sync.RWMutex
	byPair map[string]*domain.Match
	store  storage.Store
	key    string
}

func NewMatchRepository(store storage.Store, ns storage.Namespace) repository.MatchRepository {
	r := &matchRepository{
		byPair: make(map[string]*domain.Match),
		store:  store,
		key:    ns.Key(storage.KeyMatches),
	}

	var loaded []*domain.Match
	if storage.LoadJSON(context.Background(), store, r.key, &loaded) {
		normalized := Normalize(loaded)
		for _, m := range normalized {
			r.byPair[m.PairKey()] = m
		}
		if len(normalized) != len(loaded) {
			// Migrate the corrected collection back to storage.
			_ = r.persist(context.Background())
		}
	}
	return r
}

// Normalize collapses duplicate threads per unordered pair, keeping the most
// recently active one (last message time, falling back to creation time; the
// later list entry wins an exact tie). Running it on already-clean input
// returns an equivalent list.
func Normalize(matches []*domain.Match) []*domain.Match {
	byPair := make(map[string]*domain.Match, len(matches))
	for _, m := range matches {
		key := m.PairKey()
		existing, ok := byPair[key]
		if !ok || !m.LastActivity().Before(existing.LastActivity()) {
			byPair[key] = m
		}
	}

	out := make([]*domain.Match, 0, len(byPair))
	for _, m := range byPair {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivity().After(out[j].LastActivity())
	})
	return out
}

func (r *matchRepository) snapshot() []*domain.Match {
	out := make([]*domain.Match, 0, len(r.byPair))
	for _, m := range r.byPair {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivity().After(out[j].LastActivity())
	})
	return out
}

func (r *matchRepository) persist(ctx context.Context) error {
	return storage.SaveJSON(ctx, r.store, r.key, r.snapshot())
}

func (r *matchRepository) Upsert(ctx context.Context, match *domain.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPair[match.PairKey()] = match
	return r.persist(ctx)
}

func (r *matchRepository) ByID(_ context.Context, id string) (*domain.Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.byPair {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

func (r *matchRepository) ByPair(_ context.Context, user1ID, user2ID string) (*domain.Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byPair[domain.PairKey(user1ID, user2ID)]
	return m, ok
}

func (r *matchRepository) ForUser(_ context.Context, userID string) []*domain.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Match
	for _, m := range r.snapshot() {
		if m.HasUser(userID) {
			out = append(out, m)
		}
	}
	return out
}

func (r *matchRepository) All(_ context.Context) []*domain.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot()
}

func (r *matchRepository) SetLastMessage(ctx context.Context, matchID, preview string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.byPair {
		if m.ID == matchID {
			m.LastMessagePreview = preview
			t := at
			m.LastMessageAt = &t
			return r.persist(ctx)
		}
	}
	return domain.ErrMatchNotFound
}

func (r *matchRepository) Replace(ctx context.Context, matches []*domain.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPair = make(map[string]*domain.Match, len(matches))
	for _, m := range Normalize(matches) {
		r.byPair[m.PairKey()] = m
	}
	return r.persist(ctx)
}

func (r *matchRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPair = make(map[string]*domain.Match)
	return r.store.Delete(ctx, r.key)
}
