package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/random"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/scheduler"
)

const (
	autoAcceptMin = 3 * time.Second
	autoAcceptMax = 5 * time.Second
)

// TripUseCase manages the stay-request lifecycle, including the simulated
// host who accepts a fresh request after a short delay.
type TripUseCase struct {
	profiles repository.ProfileStore
	state    repository.StateRepository
	trips    repository.TripRepository
	matches  repository.MatchRepository
	messages repository.MessageRepository
	sched    scheduler.Scheduler
	rng      random.Source
	clk      clock.Clock
}

func NewTripUseCase(
	profiles repository.ProfileStore,
	state repository.StateRepository,
	trips repository.TripRepository,
	matches repository.MatchRepository,
	messages repository.MessageRepository,
	sched scheduler.Scheduler,
	rng random.Source,
	clk clock.Clock,
) *TripUseCase {
	return &TripUseCase{
		profiles: profiles,
		state:    state,
		trips:    trips,
		matches:  matches,
		messages: messages,
		sched:    sched,
		rng:      rng,
		clk:      clk,
	}
}

type CreateTripRequest struct {
	HostID      string    `json:"host_id" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	GuestsCount int       `json:"guests_count" binding:"required,min=1"`
	Notes       string    `json:"notes"`
	PurposeTags []string  `json:"purpose_tags"`
}

// CreateTripRequest files a stay request with a host and schedules the host's
// simulated acceptance 3-5 seconds out. The acceptance re-checks the trip
// status when it fires, so a request the traveler has already declined stays
// declined.
func (uc *TripUseCase) CreateTripRequest(ctx context.Context, req *CreateTripRequest) (*domain.Trip, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	host, ok := uc.profiles.ByID(req.HostID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	trip := &domain.Trip{
		ID:            uuid.New().String(),
		TravelerID:    viewer.ID,
		HostID:        host.ID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		GuestsCount:   req.GuestsCount,
		Status:        domain.TripRequested,
		DepositStatus: domain.DepositPending,
		Notes:         req.Notes,
		PurposeTags:   req.PurposeTags,
	}
	if err := uc.trips.Create(ctx, trip); err != nil {
		return nil, err
	}

	delay := uc.rng.DurationBetween(autoAcceptMin, autoAcceptMax)
	uc.sched.Schedule(acceptTaskKey(trip.ID), delay, func() {
		uc.autoAccept(context.Background(), trip.ID)
	})
	return trip, nil
}

func acceptTaskKey(tripID string) string {
	return "trip-accept:" + tripID
}

// autoAccept is the delayed host acceptance. It re-reads the trip and bails
// unless the request is still pending.
func (uc *TripUseCase) autoAccept(ctx context.Context, tripID string) {
	trip, ok := uc.trips.ByID(ctx, tripID)
	if !ok || trip.Status != domain.TripRequested {
		return
	}

	trip.Status = domain.TripAccepted
	trip.DepositStatus = domain.DepositFor(domain.TripAccepted, trip.DepositStatus)
	if err := uc.trips.Update(ctx, trip); err != nil {
		fmt.Printf("Failed to auto-accept trip %s: %v\n", tripID, err)
		return
	}

	host, ok := uc.profiles.ByID(trip.HostID)
	if !ok {
		return
	}
	match, ok := uc.matches.ByPair(ctx, trip.TravelerID, trip.HostID)
	if !ok {
		return
	}

	text := fmt.Sprintf(
		"Great news! 🎉 I've accepted your stay request for %s - %s. I'm looking forward to hosting you in %s! Let's plan the details.",
		trip.StartDate.Format("Jan 2"), trip.EndDate.Format("Jan 2"), host.City,
	)
	now := uc.clk.Now()
	msg := &domain.Message{
		ID:        uuid.New().String(),
		MatchID:   match.ID,
		SenderID:  host.ID,
		Text:      text,
		CreatedAt: now,
	}
	if err := uc.messages.Append(ctx, msg); err != nil {
		fmt.Printf("Failed to record acceptance message for trip %s: %v\n", tripID, err)
		return
	}
	if err := uc.matches.SetLastMessage(ctx, match.ID, text, now); err != nil {
		fmt.Printf("Failed to update match preview for trip %s: %v\n", tripID, err)
	}
}

// UpdateStatus moves a trip along its lifecycle. Illegal transitions are
// rejected; a transition with a deposit effect applies it atomically with the
// status change. Declining cancels the pending auto-accept.
func (uc *TripUseCase) UpdateStatus(ctx context.Context, tripID string, status domain.TripStatus) (*domain.Trip, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	trip, ok := uc.trips.ByID(ctx, tripID)
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	if !trip.HasUser(viewer.ID) {
		return nil, domain.ErrNotTripParticipant
	}
	if !trip.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTripTransition, trip.Status, status)
	}

	if status == domain.TripDeclined {
		uc.sched.Cancel(acceptTaskKey(trip.ID))
	}
	trip.Status = status
	trip.DepositStatus = domain.DepositFor(status, trip.DepositStatus)
	if err := uc.trips.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// ForUser lists the viewer's trips on either side of the engagement.
func (uc *TripUseCase) ForUser(ctx context.Context) ([]*domain.Trip, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return uc.trips.ForUser(ctx, viewer.ID), nil
}

// ByID returns one of the viewer's trips.
func (uc *TripUseCase) ByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	trip, ok := uc.trips.ByID(ctx, tripID)
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	if !trip.HasUser(viewer.ID) {
		return nil, domain.ErrNotTripParticipant
	}
	return trip, nil
}
