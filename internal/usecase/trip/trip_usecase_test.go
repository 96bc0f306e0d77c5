package trip

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/random"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/repository/memory"
	"github.com/passportpals/passportpals-backend/internal/scheduler"
	"github.com/passportpals/passportpals-backend/internal/seed"
	"github.com/passportpals/passportpals-backend/internal/storage"
)

type fixture struct {
	uc       *TripUseCase
	sched    *scheduler.Manual
	matches  repository.MatchRepository
	messages repository.MessageRepository
	trips    repository.TripRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ns := storage.Namespace("test")

	profiles := seed.NewStore()
	state := memory.NewStateRepository(store, ns)
	trips := memory.NewTripRepository(store, ns)
	matches := memory.NewMatchRepository(store, ns)
	messages := memory.NewMessageRepository()
	sched := scheduler.NewManual()
	clk := clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, state.SetCurrentUser(context.Background(), profiles.DemoUser()))

	return &fixture{
		uc:       NewTripUseCase(profiles, state, trips, matches, messages, sched, random.Fixed{}, clk),
		sched:    sched,
		matches:  matches,
		messages: messages,
		trips:    trips,
	}
}

func requestTrip(t *testing.T, f *fixture) *domain.Trip {
	t.Helper()
	trip, err := f.uc.CreateTripRequest(context.Background(), &CreateTripRequest{
		HostID:      "hiro-tokyo",
		StartDate:   time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 7, 17, 0, 0, 0, 0, time.UTC),
		GuestsCount: 1,
	})
	require.NoError(t, err)
	return trip
}

func TestCreateTripRequest_StartsPendingWithAcceptanceQueued(t *testing.T) {
	f := newFixture(t)

	trip := requestTrip(t, f)

	assert.Equal(t, domain.TripRequested, trip.Status)
	assert.Equal(t, domain.DepositPending, trip.DepositStatus)
	assert.Equal(t, seed.DemoUserID, trip.TravelerID)
	assert.True(t, f.sched.Pending(acceptTaskKey(trip.ID)))
}

func TestAutoAccept_TransitionsAndMessagesThread(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// An existing thread with the host receives the acceptance message.
	require.NoError(t, f.matches.Upsert(ctx, &domain.Match{
		ID:        "thread-hiro",
		User1ID:   seed.DemoUserID,
		User2ID:   "hiro-tokyo",
		CreatedAt: time.Now(),
	}))

	trip := requestTrip(t, f)
	require.True(t, f.sched.Fire(acceptTaskKey(trip.ID)))

	updated, ok := f.trips.ByID(ctx, trip.ID)
	require.True(t, ok)
	assert.Equal(t, domain.TripAccepted, updated.Status)
	assert.Equal(t, domain.DepositHeld, updated.DepositStatus)

	msgs := f.messages.ForMatch(ctx, "thread-hiro")
	require.Len(t, msgs, 1)
	assert.Equal(t, "hiro-tokyo", msgs[0].SenderID)
	assert.Contains(t, msgs[0].Text, "I've accepted your stay request for Jul 10 - Jul 17")
	assert.Contains(t, msgs[0].Text, "Tokyo")

	thread, ok := f.matches.ByID(ctx, "thread-hiro")
	require.True(t, ok)
	assert.Equal(t, msgs[0].Text, thread.LastMessagePreview)
}

func TestAutoAccept_WithoutThreadStillAccepts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	trip := requestTrip(t, f)
	require.True(t, f.sched.Fire(acceptTaskKey(trip.ID)))

	updated, ok := f.trips.ByID(ctx, trip.ID)
	require.True(t, ok)
	assert.Equal(t, domain.TripAccepted, updated.Status)
}

func TestUpdateStatus_DeclineBeforeAcceptanceSticks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	trip := requestTrip(t, f)

	declined, err := f.uc.UpdateStatus(ctx, trip.ID, domain.TripDeclined)
	require.NoError(t, err)
	assert.Equal(t, domain.TripDeclined, declined.Status)
	assert.Equal(t, domain.DepositRefunded, declined.DepositStatus)

	// The queued acceptance was cancelled; even a stray fire must not revive
	// the trip.
	assert.False(t, f.sched.Fire(acceptTaskKey(trip.ID)))
	final, ok := f.trips.ByID(ctx, trip.ID)
	require.True(t, ok)
	assert.Equal(t, domain.TripDeclined, final.Status)
}

func TestUpdateStatus_WalksFullLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	trip := requestTrip(t, f)
	require.True(t, f.sched.Fire(acceptTaskKey(trip.ID)))

	steps := []struct {
		status  domain.TripStatus
		deposit domain.DepositStatus
	}{
		{domain.TripActive, domain.DepositHeld},
		{domain.TripCompleted, domain.DepositReleased},
		{domain.TripReviewPending, domain.DepositReleased},
		{domain.TripClosed, domain.DepositReleased},
	}
	for _, step := range steps {
		updated, err := f.uc.UpdateStatus(ctx, trip.ID, step.status)
		require.NoError(t, err, "transition to %s", step.status)
		assert.Equal(t, step.status, updated.Status)
		assert.Equal(t, step.deposit, updated.DepositStatus)
	}
}

func TestUpdateStatus_RejectsIllegalTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	trip := requestTrip(t, f)

	for _, status := range []domain.TripStatus{
		domain.TripActive,
		domain.TripCompleted,
		domain.TripClosed,
	} {
		_, err := f.uc.UpdateStatus(ctx, trip.ID, status)
		assert.ErrorIs(t, err, domain.ErrInvalidTripTransition, "requested -> %s", status)
	}

	// Terminal states accept nothing.
	_, err := f.uc.UpdateStatus(ctx, trip.ID, domain.TripDeclined)
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(ctx, trip.ID, domain.TripAccepted)
	assert.ErrorIs(t, err, domain.ErrInvalidTripTransition)
}

func TestUpdateStatus_UnknownTrip(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UpdateStatus(context.Background(), "missing", domain.TripAccepted)
	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}

func TestForUser_ListsBothSides(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	requestTrip(t, f)
	require.NoError(t, f.trips.Create(ctx, &domain.Trip{
		ID:         "hosting-side",
		TravelerID: "sofia-barcelona",
		HostID:     seed.DemoUserID,
		Status:     domain.TripRequested,
	}))
	require.NoError(t, f.trips.Create(ctx, &domain.Trip{
		ID:         "unrelated",
		TravelerID: "erik-stockholm",
		HostID:     "camille-paris",
		Status:     domain.TripRequested,
	}))

	trips, err := f.uc.ForUser(ctx)
	require.NoError(t, err)
	assert.Len(t, trips, 2)
}
