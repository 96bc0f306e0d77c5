package domain

import "time"

// PointsEntryType distinguishes earning from spending.
type PointsEntryType string

const (
	PointsEarn  PointsEntryType = "earn"
	PointsSpend PointsEntryType = "spend"
)

// PointsLedgerEntry is one append-only row of the gamification ledger.
// Amount is always positive; the type carries the sign. A user's balance is
// a fold over their entries, not a stored field.
type PointsLedgerEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      PointsEntryType `json:"type"`
	Amount    int             `json:"amount"`
	Reason    string          `json:"reason"`
	CreatedAt time.Time       `json:"created_at"`
}

// Signed returns the entry's contribution to the balance.
func (e *PointsLedgerEntry) Signed() int {
	if e.Type == PointsSpend {
		return -e.Amount
	}
	return e.Amount
}
