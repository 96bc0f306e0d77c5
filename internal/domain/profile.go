package domain

import "time"

// Verification states of a profile.
const (
	Verified   = "verified"
	Unverified = "unverified"
)

// PersonalitySliders hold the four 0-100 self-assessment dimensions used by
// the compatibility scorer.
type PersonalitySliders struct {
	PlanningStyle int `json:"planning_style"`
	SocialBattery int `json:"social_battery"`
	FoodAdventure int `json:"food_adventure"`
	DailyPace     int `json:"daily_pace"`
}

// AgeRange is an inclusive preferred age interval.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether age falls inside the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

type Profile struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	PasswordHash       string             `json:"-"`
	Age                int                `json:"age"`
	City               string             `json:"city"`
	Country            string             `json:"country"`
	Bio                string             `json:"bio"`
	Photos             []string           `json:"photos"`
	Interests          []string           `json:"interests"`
	Languages          []string           `json:"languages"`
	PrimaryLanguage    string             `json:"primary_language"`
	HostingEnabled     bool               `json:"hosting_enabled"`
	MaxGuests          int                `json:"max_guests"`
	HouseRules         []string           `json:"house_rules"`
	HouseVibe          string             `json:"house_vibe"`
	Level              string             `json:"level"`
	AvgRating          float64            `json:"avg_rating"`
	ReviewCount        int                `json:"review_count"`
	VerificationStatus string             `json:"verification_status"`
	PersonalitySliders PersonalitySliders `json:"personality_sliders"`
	TravelStyle        []string           `json:"travel_style"`
	RomanticIntent     string             `json:"romantic_intent"`
	AgePreference      AgeRange           `json:"age_preference"`
	GenderPreference   []string           `json:"gender_preference"`
	LanguagePreference []string           `json:"language_preference"`
	CreatedAt          time.Time          `json:"created_at"`
}

// IsVerified reports whether the profile passed identity verification.
func (p *Profile) IsVerified() bool {
	return p.VerificationStatus == Verified
}
