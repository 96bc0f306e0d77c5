package domain

import "time"

// Message belongs to exactly one match thread. Display order is by CreatedAt,
// not insertion order: a delayed auto-reply can land in the log after newer
// user messages.
type Message struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
