package points

import (
	"context"

	"github.com/google/uuid"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
)

// PointsUseCase maintains the gamification ledger. The balance is always a
// fold over the viewer's entries, so it can never disagree with the history.
type PointsUseCase struct {
	state  repository.StateRepository
	ledger repository.PointsRepository
	clk    clock.Clock
}

func NewPointsUseCase(state repository.StateRepository, ledger repository.PointsRepository, clk clock.Clock) *PointsUseCase {
	return &PointsUseCase{state: state, ledger: ledger, clk: clk}
}

// Balance folds the viewer's ledger into their current total.
func (uc *PointsUseCase) Balance(ctx context.Context) (int, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return 0, domain.ErrNotAuthenticated
	}
	return uc.balanceFor(ctx, viewer.ID), nil
}

func (uc *PointsUseCase) balanceFor(ctx context.Context, userID string) int {
	total := 0
	for _, e := range uc.ledger.ForUser(ctx, userID) {
		total += e.Signed()
	}
	return total
}

// Ledger returns the viewer's entries, newest first.
func (uc *PointsUseCase) Ledger(ctx context.Context) ([]*domain.PointsLedgerEntry, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return uc.ledger.ForUser(ctx, viewer.ID), nil
}

// AddPoints appends an earn entry for the viewer.
func (uc *PointsUseCase) AddPoints(ctx context.Context, amount int, reason string) (*domain.PointsLedgerEntry, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	entry := &domain.PointsLedgerEntry{
		ID:        uuid.New().String(),
		UserID:    viewer.ID,
		Type:      domain.PointsEarn,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: uc.clk.Now(),
	}
	if err := uc.ledger.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SpendPoints appends a spend entry if the viewer's balance covers it.
// An overdraw leaves the ledger untouched and returns ErrInsufficientPoints.
func (uc *PointsUseCase) SpendPoints(ctx context.Context, amount int, reason string) (*domain.PointsLedgerEntry, error) {
	viewer, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	if amount > uc.balanceFor(ctx, viewer.ID) {
		return nil, domain.ErrInsufficientPoints
	}
	entry := &domain.PointsLedgerEntry{
		ID:        uuid.New().String(),
		UserID:    viewer.ID,
		Type:      domain.PointsSpend,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: uc.clk.Now(),
	}
	if err := uc.ledger.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
