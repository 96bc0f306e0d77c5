package feed

import (
	"context"
	"sync"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/matching"
	"github.com/passportpals/passportpals-backend/internal/repository"
)

// FeedUseCase builds the ranked swipe stack. The stack is not stored: it is
// recomputed from the pool, the swipe log, the match list and the active
// filters, so it can never drift from them.
type FeedUseCase struct {
	profiles repository.ProfileStore
	state    repository.StateRepository
	swipes   repository.SwipeRepository
	matches  repository.MatchRepository

	mu      sync.RWMutex
	filters domain.Filters
}

func NewFeedUseCase(
	profiles repository.ProfileStore,
	state repository.StateRepository,
	swipes repository.SwipeRepository,
	matches repository.MatchRepository,
) *FeedUseCase {
	return &FeedUseCase{
		profiles: profiles,
		state:    state,
		swipes:   swipes,
		matches:  matches,
		filters:  domain.DefaultFilters(),
	}
}

// Stack returns the ranked candidates the viewer has not swiped or matched
// yet. Identical inputs produce identical output.
func (uc *FeedUseCase) Stack(ctx context.Context) ([]matching.Result, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	excluded := make(map[string]struct{})
	for _, s := range uc.swipes.BySwiper(ctx, viewer.ID) {
		excluded[s.TargetID] = struct{}{}
	}
	for _, m := range uc.matches.ForUser(ctx, viewer.ID) {
		if other, ok := m.OtherUserID(viewer.ID); ok {
			excluded[other] = struct{}{}
		}
	}

	uc.mu.RLock()
	filters := uc.filters
	uc.mu.RUnlock()

	return matching.Rank(viewer, uc.profiles.All(), excluded, filters), nil
}

// Filters returns the active filter set.
func (uc *FeedUseCase) Filters() domain.Filters {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.filters
}

// FiltersRequest carries partial filter updates; nil fields stay as they are.
type FiltersRequest struct {
	AgeRange     *domain.AgeRange `json:"age_range"`
	Languages    *[]string        `json:"languages"`
	Interests    *[]string        `json:"interests"`
	HostingOnly  *bool            `json:"hosting_only"`
	VerifiedOnly *bool            `json:"verified_only"`
	PlatonicOnly *bool            `json:"platonic_only"`
}

// UpdateFilters merges a partial update into the active filter set.
func (uc *FeedUseCase) UpdateFilters(req *FiltersRequest) domain.Filters {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if req.AgeRange != nil {
		uc.filters.AgeRange = *req.AgeRange
	}
	if req.Languages != nil {
		uc.filters.Languages = *req.Languages
	}
	if req.Interests != nil {
		uc.filters.Interests = *req.Interests
	}
	if req.HostingOnly != nil {
		uc.filters.HostingOnly = *req.HostingOnly
	}
	if req.VerifiedOnly != nil {
		uc.filters.VerifiedOnly = *req.VerifiedOnly
	}
	if req.PlatonicOnly != nil {
		uc.filters.PlatonicOnly = *req.PlatonicOnly
	}
	return uc.filters
}
