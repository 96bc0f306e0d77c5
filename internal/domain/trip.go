package domain

import "time"

// TripStatus is the lifecycle state of a stay request.
type TripStatus string

const (
	TripRequested     TripStatus = "requested"
	TripAccepted      TripStatus = "accepted"
	TripActive        TripStatus = "active"
	TripCompleted     TripStatus = "completed"
	TripReviewPending TripStatus = "review-pending"
	TripClosed        TripStatus = "closed"
	TripDeclined      TripStatus = "declined"
)

// DepositStatus tracks the notional payment hold attached to a trip. It is
// derived from the trip status, never set independently.
type DepositStatus string

const (
	DepositPending  DepositStatus = "pending"
	DepositHeld     DepositStatus = "held"
	DepositReleased DepositStatus = "released"
	DepositRefunded DepositStatus = "refunded"
)

// tripTransitions is the allowed successor set per status. declined is
// terminal and reachable only from requested.
var tripTransitions = map[TripStatus][]TripStatus{
	TripRequested:     {TripAccepted, TripDeclined},
	TripAccepted:      {TripActive},
	TripActive:        {TripCompleted},
	TripCompleted:     {TripReviewPending},
	TripReviewPending: {TripClosed},
	TripClosed:        {},
	TripDeclined:      {},
}

// CanTransition reports whether moving from one status to another is legal.
func (s TripStatus) CanTransition(to TripStatus) bool {
	for _, next := range tripTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// DepositFor returns the deposit sub-state a status transition forces, or the
// current one when the status carries no deposit effect.
func DepositFor(status TripStatus, current DepositStatus) DepositStatus {
	switch status {
	case TripAccepted:
		return DepositHeld
	case TripCompleted:
		return DepositReleased
	case TripDeclined:
		return DepositRefunded
	default:
		return current
	}
}

// Trip is a proposed hosting engagement between a traveler and a host.
type Trip struct {
	ID            string        `json:"id"`
	TravelerID    string        `json:"traveler_id"`
	HostID        string        `json:"host_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	GuestsCount   int           `json:"guests_count"`
	Status        TripStatus    `json:"status"`
	DepositStatus DepositStatus `json:"deposit_status"`
	Notes         string        `json:"notes"`
	PurposeTags   []string      `json:"purpose_tags"`
}

// HasUser reports whether userID is the traveler or the host.
func (t *Trip) HasUser(userID string) bool {
	return t.TravelerID == userID || t.HostID == userID
}
