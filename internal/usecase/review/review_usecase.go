package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/usecase/points"
)

const reviewRewardPoints = 25

// ReviewUseCase records post-trip reviews and pays out the review reward.
type ReviewUseCase struct {
	state   repository.StateRepository
	trips   repository.TripRepository
	reviews repository.ReviewRepository
	points  *points.PointsUseCase
	clk     clock.Clock
}

func NewReviewUseCase(
	state repository.StateRepository,
	trips repository.TripRepository,
	reviews repository.ReviewRepository,
	pointsUC *points.PointsUseCase,
	clk clock.Clock,
) *ReviewUseCase {
	return &ReviewUseCase{state: state, trips: trips, reviews: reviews, points: pointsUC, clk: clk}
}

type CreateReviewRequest struct {
	TripID  string               `json:"trip_id" binding:"required"`
	Ratings domain.ReviewRatings `json:"ratings" binding:"required"`
	Comment string               `json:"comment"`
}

// CreateReview records the viewer's review of their trip counterpart and
// credits the review reward to their ledger.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, req *CreateReviewRequest) (*domain.Review, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	trip, ok := uc.trips.ByID(ctx, req.TripID)
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	if !trip.HasUser(viewer.ID) {
		return nil, domain.ErrNotTripParticipant
	}

	revieweeID := trip.HostID
	if viewer.ID == trip.HostID {
		revieweeID = trip.TravelerID
	}
	review := &domain.Review{
		ID:         uuid.New().String(),
		TripID:     trip.ID,
		ReviewerID: viewer.ID,
		RevieweeID: revieweeID,
		Ratings:    req.Ratings,
		Comment:    req.Comment,
		CreatedAt:  uc.clk.Now(),
	}
	if err := uc.reviews.Append(ctx, review); err != nil {
		return nil, err
	}
	if _, err := uc.points.AddPoints(ctx, reviewRewardPoints, "Completed trip review"); err != nil {
		return nil, err
	}
	return review, nil
}

// ForTrip lists the reviews filed for one of the viewer's trips.
func (uc *ReviewUseCase) ForTrip(ctx context.Context, tripID string) ([]*domain.Review, error) {
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
	return uc.reviews.ForTrip(ctx, tripID), nil
}
