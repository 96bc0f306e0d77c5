package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/repository/memory"
	"github.com/passportpals/passportpals-backend/internal/scheduler"
	"github.com/passportpals/passportpals-backend/internal/seed"
	"github.com/passportpals/passportpals-backend/internal/storage"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fixture struct {
	uc      *AuthUseCase
	sched   *scheduler.Manual
	state   repository.StateRepository
	matches repository.MatchRepository
	trips   repository.TripRepository
	points  repository.PointsRepository
	store   storage.Store
	ns      storage.Namespace
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ns := storage.Namespace("test")

	profiles := seed.NewStore()
	state := memory.NewStateRepository(store, ns)
	swipes := memory.NewSwipeRepository(store, ns)
	matches := memory.NewMatchRepository(store, ns)
	trips := memory.NewTripRepository(store, ns)
	messages := memory.NewMessageRepository()
	points := memory.NewPointsRepository(store, ns)
	reviews := memory.NewReviewRepository()
	sched := scheduler.NewManual()

	uc := NewAuthUseCase(
		profiles, state, swipes, matches, trips, messages, points, reviews,
		sched, clock.NewFixed(time.Now()), testSecret, 7*24*time.Hour,
	)
	return &fixture{uc: uc, sched: sched, state: state, matches: matches, trips: trips, points: points, store: store, ns: ns}
}

func TestLogin_AcceptsSeedCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.uc.Login(ctx, "hiro@passportpals.app", seed.DemoPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "hiro-tokyo", result.User.ID)

	current, ok := f.state.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "hiro-tokyo", current.ID)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Login(ctx, "hiro@passportpals.app", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.uc.Login(ctx, "nobody@passportpals.app", seed.DemoPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, ok := f.state.CurrentUser(ctx)
	assert.False(t, ok)
}

func TestLoginAsDemo_SeedsCollections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.uc.LoginAsDemo(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.DemoUserID, result.User.ID)

	assert.NotEmpty(t, f.matches.ForUser(ctx, seed.DemoUserID))
	assert.NotEmpty(t, f.trips.ForUser(ctx, seed.DemoUserID))
	assert.True(t, f.state.DemoMode(ctx))
	assert.True(t, f.state.OnboardingComplete(ctx))

	// The seeded ledger folds to the demo balance.
	total := 0
	for _, e := range f.points.ForUser(ctx, seed.DemoUserID) {
		total += e.Signed()
	}
	assert.Equal(t, 230, total)
}

func TestCreateUserFromOnboarding_StartsWithWelcomeBonus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.uc.CreateUserFromOnboarding(ctx, &OnboardingRequest{
		Name:          "Maya Chen",
		Age:           26,
		City:          "Taipei",
		Country:       "Taiwan",
		Interests:     []string{"street-food", "hiking"},
		HostingStatus: "both",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maya Chen", result.User.Name)
	assert.Equal(t, "mayachen@passportpals.app", result.User.Email)
	assert.True(t, result.User.HostingEnabled)

	entries := f.points.ForUser(ctx, result.User.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, 100, entries[0].Amount)
	assert.Equal(t, "Welcome bonus", entries[0].Reason)

	// Demo content is remapped onto the new account.
	assert.NotEmpty(t, f.matches.ForUser(ctx, result.User.ID))
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	f := newFixture(t)

	result, err := f.uc.LoginAsDemo(context.Background())
	require.NoError(t, err)

	userID, err := f.uc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, seed.DemoUserID, userID)
}

func TestVerifyToken_RejectsGarbageAndForeignSignature(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	// A token signed with a different secret must not verify.
	other := newFixture(t)
	other.uc.jwtSecret = "another-secret-another-secret-32b"
	result, err := other.uc.LoginAsDemo(context.Background())
	require.NoError(t, err)

	_, err = f.uc.VerifyToken(result.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout_ClearsEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.LoginAsDemo(ctx)
	require.NoError(t, err)
	customized := domain.DefaultSettings()
	customized.DarkMode = true
	customized.Language = "ja"
	require.NoError(t, f.state.SetSettings(ctx, customized))
	f.sched.Schedule("pending-task", time.Second, func() { t.Fatal("must not fire") })

	require.NoError(t, f.uc.Logout(ctx))

	_, ok := f.state.CurrentUser(ctx)
	assert.False(t, ok)
	assert.False(t, f.state.DemoMode(ctx))
	assert.False(t, f.state.OnboardingComplete(ctx))
	assert.Equal(t, domain.DefaultSettings(), f.state.Settings(ctx))
	assert.Empty(t, f.matches.All(ctx))
	assert.Empty(t, f.trips.ForUser(ctx, seed.DemoUserID))
	assert.Empty(t, f.points.ForUser(ctx, seed.DemoUserID))
	assert.False(t, f.sched.Pending("pending-task"))

	// Nothing from the session stays on disk, settings included.
	for _, key := range f.ns.All() {
		_, err := f.store.Get(ctx, key)
		assert.ErrorIs(t, err, storage.ErrKeyNotFound, key)
	}
}
