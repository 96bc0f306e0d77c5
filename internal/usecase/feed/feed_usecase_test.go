package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/repository/memory"
	"github.com/passportpals/passportpals-backend/internal/seed"
	"github.com/passportpals/passportpals-backend/internal/storage"
)

type fixture struct {
	uc      *FeedUseCase
	state   repository.StateRepository
	swipes  repository.SwipeRepository
	matches repository.MatchRepository
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

	require.NoError(t, state.SetCurrentUser(context.Background(), profiles.DemoUser()))

	return &fixture{
		uc:      NewFeedUseCase(profiles, state, swipes, matches),
		state:   state,
		swipes:  swipes,
		matches: matches,
	}
}

func stackIDs(t *testing.T, f *fixture) []string {
	t.Helper()
	stack, err := f.uc.Stack(context.Background())
	require.NoError(t, err)
	ids := make([]string, len(stack))
	for i, r := range stack {
		ids[i] = r.User.ID
	}
	return ids
}

func TestStack_ExcludesViewerAndIsOrdered(t *testing.T) {
	f := newFixture(t)

	stack, err := f.uc.Stack(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, stack)
	for i, r := range stack {
		assert.NotEqual(t, seed.DemoUserID, r.User.ID)
		if i > 0 {
			assert.LessOrEqual(t, r.Score.Percent, stack[i-1].Score.Percent)
		}
	}
}

func TestStack_DropsSwipedAndMatchedUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.swipes.Append(ctx, &domain.Swipe{
		SwiperID:  seed.DemoUserID,
		TargetID:  "hiro-tokyo",
		Direction: domain.SwipeDislike,
		CreatedAt: time.Now(),
	}))
	require.NoError(t, f.matches.Upsert(ctx, &domain.Match{
		ID:        "m1",
		User1ID:   seed.DemoUserID,
		User2ID:   "sofia-barcelona",
		CreatedAt: time.Now(),
	}))

	ids := stackIDs(t, f)
	assert.NotContains(t, ids, "hiro-tokyo")
	assert.NotContains(t, ids, "sofia-barcelona")
	assert.Contains(t, ids, "erik-stockholm")
}

func TestStack_RecomputationIsIdempotent(t *testing.T) {
	f := newFixture(t)

	first := stackIDs(t, f)
	second := stackIDs(t, f)
	assert.Equal(t, first, second)
}

func TestStack_RequiresSession(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.state.ClearCurrentUser(context.Background()))

	_, err := f.uc.Stack(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestUpdateFilters_MergesPartialUpdate(t *testing.T) {
	f := newFixture(t)

	hostingOnly := true
	updated := f.uc.UpdateFilters(&FiltersRequest{HostingOnly: &hostingOnly})
	assert.True(t, updated.HostingOnly)
	// Untouched fields keep their defaults.
	assert.Equal(t, domain.AgeRange{Min: 18, Max: 65}, updated.AgeRange)

	verifiedOnly := true
	updated = f.uc.UpdateFilters(&FiltersRequest{VerifiedOnly: &verifiedOnly})
	assert.True(t, updated.HostingOnly, "earlier update survives")
	assert.True(t, updated.VerifiedOnly)
}

func TestStack_AppliesFilters(t *testing.T) {
	f := newFixture(t)

	unfiltered := stackIDs(t, f)
	require.Contains(t, unfiltered, "yuki-kyoto")

	verifiedOnly := true
	f.uc.UpdateFilters(&FiltersRequest{VerifiedOnly: &verifiedOnly})

	// yuki-kyoto is the unverified seed profile.
	assert.NotContains(t, stackIDs(t, f), "yuki-kyoto")
}
