// Package repository defines the collection ports the use cases depend on.
// Implementations hold live state in memory and mirror every mutation into
// the key-value store.
package repository

import (
	"context"
	"time"

	"github.com/passportpals/passportpals-backend/internal/domain"
)

// ProfileStore is the read-only pool of seed profiles.
type ProfileStore interface {
	All() []*domain.Profile
	ByID(id string) (*domain.Profile, bool)
	ByEmail(email string) (*domain.Profile, bool)
	DemoUser() *domain.Profile
}

type SwipeRepository interface {
	Append(ctx context.Context, swipe *domain.Swipe) error
	BySwiper(ctx context.Context, swiperID string) []*domain.Swipe
	Reset(ctx context.Context) error
}

type MatchRepository interface {
	// Upsert stores the match under its pair key, replacing any thread that
	// already exists for the pair.
	Upsert(ctx context.Context, match *domain.Match) error
	ByID(ctx context.Context, id string) (*domain.Match, bool)
	ByPair(ctx context.Context, user1ID, user2ID string) (*domain.Match, bool)
	ForUser(ctx context.Context, userID string) []*domain.Match
	All(ctx context.Context) []*domain.Match
	SetLastMessage(ctx context.Context, matchID, preview string, at time.Time) error
	Replace(ctx context.Context, matches []*domain.Match) error
	Reset(ctx context.Context) error
}

type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	ByID(ctx context.Context, id string) (*domain.Trip, bool)
	ForUser(ctx context.Context, userID string) []*domain.Trip
	Update(ctx context.Context, trip *domain.Trip) error
	Replace(ctx context.Context, trips []*domain.Trip) error
	Reset(ctx context.Context) error
}

type MessageRepository interface {
	Append(ctx context.Context, msg *domain.Message) error
	ForMatch(ctx context.Context, matchID string) []*domain.Message
	Replace(ctx context.Context, msgs []*domain.Message) error
	Reset(ctx context.Context) error
}

type PointsRepository interface {
	Append(ctx context.Context, entry *domain.PointsLedgerEntry) error
	ForUser(ctx context.Context, userID string) []*domain.PointsLedgerEntry
	Replace(ctx context.Context, entries []*domain.PointsLedgerEntry) error
	Reset(ctx context.Context) error
}

type ReviewRepository interface {
	Append(ctx context.Context, review *domain.Review) error
	ForTrip(ctx context.Context, tripID string) []*domain.Review
	Reset(ctx context.Context) error
}

// StateRepository holds the singleton pieces of session state: the current
// user record, their settings and the onboarding/demo flags.
type StateRepository interface {
	CurrentUser(ctx context.Context) (*domain.Profile, bool)
	SetCurrentUser(ctx context.Context, user *domain.Profile) error
	ClearCurrentUser(ctx context.Context) error
	Settings(ctx context.Context) domain.UserSettings
	SetSettings(ctx context.Context, settings domain.UserSettings) error
	OnboardingComplete(ctx context.Context) bool
	SetOnboardingComplete(ctx context.Context, complete bool) error
	DemoMode(ctx context.Context) bool
	SetDemoMode(ctx context.Context, enabled bool) error
	// Reset restores the defaults and removes every persisted state key,
	// settings included.
	Reset(ctx context.Context) error
}
