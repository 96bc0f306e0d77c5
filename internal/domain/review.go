package domain

import "time"

// ReviewRatings are the four 1-5 dimensions a guest or host is rated on.
type ReviewRatings struct {
	Hospitality      int `json:"hospitality"`
	Communication    int `json:"communication"`
	CulturalExchange int `json:"cultural_exchange"`
	Cleanliness      int `json:"cleanliness"`
}

type Review struct {
	ID         string        `json:"id"`
	TripID     string        `json:"trip_id"`
	ReviewerID string        `json:"reviewer_id"`
	RevieweeID string        `json:"reviewee_id"`
	Ratings    ReviewRatings `json:"ratings"`
	Comment    string        `json:"comment"`
	CreatedAt  time.Time     `json:"created_at"`
}
