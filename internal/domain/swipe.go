package domain

import "time"

// SwipeDirection is the gesture a user made on a candidate card.
type SwipeDirection string

const (
	SwipeLike      SwipeDirection = "like"
	SwipeDislike   SwipeDirection = "dislike"
	SwipeSuperlike SwipeDirection = "superlike"
)

// IsPositive reports whether the gesture can lead to a match.
func (d SwipeDirection) IsPositive() bool {
	return d == SwipeLike || d == SwipeSuperlike
}

// Swipe is a one-directional decision by one user about another. The swipe
// log is append-only; re-swiping the same target is recorded again rather
// than rejected.
type Swipe struct {
	SwiperID  string         `json:"swiper_id"`
	TargetID  string         `json:"target_id"`
	Direction SwipeDirection `json:"direction"`
	CreatedAt time.Time      `json:"created_at"`
}
