package swipe

import (
	"context"

	"github.com/google/uuid"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/random"
	"github.com/passportpals/passportpals-backend/internal/repository"
)

// SwipeUseCase records swipe gestures and resolves them into matches.
type SwipeUseCase struct {
	profiles repository.ProfileStore
	state    repository.StateRepository
	swipes   repository.SwipeRepository
	matches  repository.MatchRepository
	rng      random.Source
	clk      clock.Clock
}

func NewSwipeUseCase(
	profiles repository.ProfileStore,
	state repository.StateRepository,
	swipes repository.SwipeRepository,
	matches repository.MatchRepository,
	rng random.Source,
	clk clock.Clock,
) *SwipeUseCase {
	return &SwipeUseCase{
		profiles: profiles,
		state:    state,
		swipes:   swipes,
		matches:  matches,
		rng:      rng,
		clk:      clk,
	}
}

// SwipeResult reports what a swipe produced. Match is nil unless the swipe
// resolved into (or hit an existing) match.
type SwipeResult struct {
	IsMatch     bool            `json:"is_match"`
	Match       *domain.Match   `json:"match,omitempty"`
	MatchedUser *domain.Profile `json:"matched_user,omitempty"`
}

// RecordSwipe appends the gesture to the swipe log and, for a positive
// gesture, simulates the counterpart's interest: a superlike always matches,
// a like matches half the time. An existing thread for the pair is returned
// as-is rather than replaced, so reciprocal swipes cannot fork conversations.
func (uc *SwipeUseCase) RecordSwipe(ctx context.Context, targetID string, direction domain.SwipeDirection) (*SwipeResult, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	if targetID == viewer.ID {
		return nil, domain.ErrCannotSwipeSelf
	}
	target, ok := uc.profiles.ByID(targetID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	swipe := &domain.Swipe{
		SwiperID:  viewer.ID,
		TargetID:  targetID,
		Direction: direction,
		CreatedAt: uc.clk.Now(),
	}
	if err := uc.swipes.Append(ctx, swipe); err != nil {
		return nil, err
	}

	if existing, ok := uc.matches.ByPair(ctx, viewer.ID, targetID); ok {
		return &SwipeResult{IsMatch: true, Match: existing, MatchedUser: target}, nil
	}

	if !direction.IsPositive() {
		return &SwipeResult{}, nil
	}
	mutual := direction == domain.SwipeSuperlike || uc.rng.Float64() > 0.5
	if !mutual {
		return &SwipeResult{}, nil
	}

	match := &domain.Match{
		ID:        uuid.New().String(),
		User1ID:   viewer.ID,
		User2ID:   targetID,
		CreatedAt: uc.clk.Now(),
	}
	if err := uc.matches.Upsert(ctx, match); err != nil {
		return nil, err
	}
	return &SwipeResult{IsMatch: true, Match: match, MatchedUser: target}, nil
}

// Matches lists the viewer's match threads, most recently active first.
func (uc *SwipeUseCase) Matches(ctx context.Context) ([]*domain.Match, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return uc.matches.ForUser(ctx, viewer.ID), nil
}

// MatchByID returns one of the viewer's match threads.
func (uc *SwipeUseCase) MatchByID(ctx context.Context, matchID string) (*domain.Match, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	match, ok := uc.matches.ByID(ctx, matchID)
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	if !match.HasUser(viewer.ID) {
		return nil, domain.ErrNotMatchParticipant
	}
	return match, nil
}
