package domain

import "time"

// Match is a mutually-confirmed pairing enabling a conversation thread.
// The collection holds at most one match per unordered user pair; PairKey is
// the identity that enforces it.
type Match struct {
	ID                 string     `json:"id"`
	User1ID            string     `json:"user1_id"`
	User2ID            string     `json:"user2_id"`
	CreatedAt          time.Time  `json:"created_at"`
	LastMessagePreview string     `json:"last_message_preview,omitempty"`
	LastMessageAt      *time.Time `json:"last_message_at,omitempty"`
}

// PairKey returns the order-independent identity for a user pair.
func PairKey(user1ID, user2ID string) string {
	if user1ID > user2ID {
		user1ID, user2ID = user2ID, user1ID
	}
	return user1ID + "::" + user2ID
}

// PairKey returns the match's order-independent pair identity.
func (m *Match) PairKey() string {
	return PairKey(m.User1ID, m.User2ID)
}

// HasUser reports whether userID is one side of the match.
func (m *Match) HasUser(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherUserID returns the counterparty of userID, if userID belongs to the match.
func (m *Match) OtherUserID(userID string) (string, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return "", false
}

// LastActivity is the timestamp used to pick the survivor when duplicate
// threads for one pair are collapsed: last message time, falling back to
// creation time.
func (m *Match) LastActivity() time.Time {
	if m.LastMessageAt != nil {
		return *m.LastMessageAt
	}
	return m.CreatedAt
}
