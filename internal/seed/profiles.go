// Package seed holds the static profile pool the demo runs against. There is
// no registration backend; login resolves against these records.
package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/passportpals/passportpals-backend/internal/domain"
)

// DemoUserID is the distinguished profile used by demo login.
const DemoUserID = "demo-user"

// DemoPassword is the shared password of every seed account.
const DemoPassword = "wanderlust"

// Store is the read-only profile pool.
type Store struct {
	profiles []*domain.Profile
	byID     map[string]*domain.Profile
	byEmail  map[string]*domain.Profile
}

func NewStore() *Store {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	profiles := buildProfiles(string(hash))
	s := &Store{
		profiles: profiles,
		byID:     make(map[string]*domain.Profile, len(profiles)),
		byEmail:  make(map[string]*domain.Profile, len(profiles)),
	}
	for _, p := range profiles {
		s.byID[p.ID] = p
		s.byEmail[p.Email] = p
	}
	return s
}

func (s *Store) All() []*domain.Profile {
	return s.profiles
}

func (s *Store) ByID(id string) (*domain.Profile, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func (s *Store) ByEmail(email string) (*domain.Profile, bool) {
	p, ok := s.byEmail[email]
	return p, ok
}

// DemoUser returns the profile demo login uses.
func (s *Store) DemoUser() *domain.Profile {
	p, _ := s.byID[DemoUserID]
	return p
}

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func buildProfiles(passwordHash string) []*domain.Profile {
	return []*domain.Profile{
		{
			ID: DemoUserID, Name: "Alex Rivers", Email: "demo@passportpals.app",
			PasswordHash: passwordHash, Age: 28, City: "San Francisco", Country: "USA",
			Bio:       "Travel enthusiast exploring the world one host at a time.",
			Interests: []string{"photography", "street-food", "live-music", "hiking"},
			Languages: []string{"English", "Spanish"}, PrimaryLanguage: "English",
			HostingEnabled: true, MaxGuests: 2, HouseVibe: "quiet-cozy",
			Level: "Globetrotter", AvgRating: 4.8, ReviewCount: 12,
			VerificationStatus: domain.Verified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 40, SocialBattery: 70, FoodAdventure: 85, DailyPace: 60},
			TravelStyle:        []string{"culture", "food", "people"},
			RomanticIntent:     domain.IntentOpen,
			AgePreference:      domain.AgeRange{Min: 21, Max: 45},
			CreatedAt:          daysAgo(400),
		},
		{
			ID: "hiro-tokyo", Name: "Hiro Tanaka", Email: "hiro@passportpals.app",
			PasswordHash: passwordHash, Age: 31, City: "Tokyo", Country: "Japan",
			Bio:       "Indie music lover in Shimokitazawa. I know every vinyl shop in the city.",
			Interests: []string{"live-music", "vinyl", "street-food", "photography"},
			Languages: []string{"Japanese", "English"}, PrimaryLanguage: "Japanese",
			HostingEnabled: true, MaxGuests: 1, HouseVibe: "creative-studio",
			Level: "Superhost", AvgRating: 4.9, ReviewCount: 31,
			VerificationStatus: domain.Verified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 35, SocialBattery: 65, FoodAdventure: 90, DailyPace: 55},
			TravelStyle:        []string{"culture", "food", "nightlife"},
			RomanticIntent:     domain.IntentOpen,
			AgePreference:      domain.AgeRange{Min: 22, Max: 40},
			CreatedAt:          daysAgo(700),
		},
		{
			ID: "sofia-barcelona", Name: "Sofía Martín", Email: "sofia@passportpals.app",
			PasswordHash: passwordHash, Age: 27, City: "Barcelona", Country: "Spain",
			Bio:       "Architect obsessed with Gaudí and good vermouth.",
			Interests: []string{"architecture", "art", "street-food", "cycling"},
			Languages: []string{"Spanish", "Catalan", "English"}, PrimaryLanguage: "Spanish",
			HostingEnabled: true, MaxGuests: 2, HouseVibe: "social-open",
			Level: "Superhost", AvgRating: 4.7, ReviewCount: 24,
			VerificationStatus: domain.Verified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 55, SocialBattery: 80, FoodAdventure: 75, DailyPace: 65},
			TravelStyle:        []string{"culture", "art", "food"},
			RomanticIntent:     domain.IntentPlatonicOnly,
			AgePreference:      domain.AgeRange{Min: 20, Max: 40},
			CreatedAt:          daysAgo(560),
		},
		{
			ID: "priya-mumbai", Name: "Priya Sharma", Email: "priya@passportpals.app",
			PasswordHash: passwordHash, Age: 29, City: "Mumbai", Country: "India",
			Bio:       "Vegetarian cook, temple guide, chai evangelist.",
			Interests: []string{"cooking", "temples", "yoga", "street-food"},
			Languages: []string{"Hindi", "English", "Marathi"}, PrimaryLanguage: "Hindi",
			HostingEnabled: true, MaxGuests: 2, HouseVibe: "quiet-cozy",
			Level: "Superhost", AvgRating: 5.0, ReviewCount: 42,
			VerificationStatus: domain.Verified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 60, SocialBattery: 55, FoodAdventure: 95, DailyPace: 50},
			TravelStyle:        []string{"culture", "food", "wellness"},
			RomanticIntent:     domain.IntentPlatonicOnly,
			AgePreference:      domain.AgeRange{Min: 21, Max: 50},
			CreatedAt:          daysAgo(650),
		},
		{
			ID: "erik-stockholm", Name: "Erik Lindqvist", Email: "erik@passportpals.app",
			PasswordHash: passwordHash, Age: 34, City: "Stockholm", Country: "Sweden",
			Bio:       "Archipelago kayaker. 30,000 islands, still counting.",
			Interests: []string{"hiking", "kayaking", "sailing", "photography"},
			Languages: []string{"Swedish", "English"}, PrimaryLanguage: "Swedish",
			HostingEnabled: true, MaxGuests: 3, HouseVibe: "nature-retreat",
			Level: "Explorer", AvgRating: 4.6, ReviewCount: 17,
			VerificationStatus: domain.Verified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 70, SocialBattery: 40, FoodAdventure: 50, DailyPace: 45},
			TravelStyle:        []string{"nature", "adventure"},
			RomanticIntent:     domain.IntentOpen,
			AgePreference:      domain.AgeRange{Min: 25, Max: 45},
			CreatedAt:          daysAgo(520),
		},
		{
			ID: "camille-paris", Name: "Camille Dubois", Email: "camille@passportpals.app",
			PasswordHash: passwordHash, Age: 26, City: "Paris", Country: "France",
			Bio:       "Gallery assistant. I collect hidden cafés and film cameras.",
			Interests: []string{"art", "photography", "cafes", "cinema"},
			Languages: []string{"French", "English"}, PrimaryLanguage: "French",
			HostingEnabled: false, MaxGuests: 0, HouseVibe: "",
			Level: "Explorer", AvgRating: 4.5, ReviewCount: 8,
			VerificationStatus: domain.Verified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 30, SocialBattery: 60, FoodAdventure: 70, DailyPace: 40},
			TravelStyle:        []string{"art", "culture"},
			RomanticIntent:     domain.IntentOpen,
			AgePreference:      domain.AgeRange{Min: 22, Max: 38},
			CreatedAt:          daysAgo(300),
		},
		{
			ID: "marco-rome", Name: "Marco Rossi", Email: "marco@passportpals.app",
			PasswordHash: passwordHash, Age: 38, City: "Rome", Country: "Italy",
			Bio:       "Nonna-trained cook. Cream in carbonara is a crime.",
			Interests: []string{"cooking", "history", "wine", "street-food"},
			Languages: []string{"Italian", "English"}, PrimaryLanguage: "Italian",
			HostingEnabled: true, MaxGuests: 4, HouseVibe: "social-open",
			Level: "Superhost", AvgRating: 4.9, ReviewCount: 56,
			VerificationStatus: domain.Verified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 45, SocialBattery: 85, FoodAdventure: 90, DailyPace: 70},
			TravelStyle:        []string{"food", "culture", "people"},
			RomanticIntent:     domain.IntentPlatonicOnly,
			AgePreference:      domain.AgeRange{Min: 21, Max: 60},
			CreatedAt:          daysAgo(900),
		},
		{
			ID: "yuki-kyoto", Name: "Yuki Nakamura", Email: "yuki@passportpals.app",
			PasswordHash: passwordHash, Age: 25, City: "Kyoto", Country: "Japan",
			Bio:       "Tea ceremony student, traveling between temples.",
			Interests: []string{"temples", "tea", "meditation", "photography"},
			Languages: []string{"Japanese", "English"}, PrimaryLanguage: "Japanese",
			HostingEnabled: false, MaxGuests: 0,
			Level: "Explorer", AvgRating: 4.4, ReviewCount: 5,
			VerificationStatus: domain.Unverified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 75, SocialBattery: 30, FoodAdventure: 55, DailyPace: 30},
			TravelStyle:        []string{"culture", "wellness"},
			RomanticIntent:     domain.IntentOpen,
			AgePreference:      domain.AgeRange{Min: 20, Max: 35},
			CreatedAt:          daysAgo(200),
		},
		{
			ID: "amara-accra", Name: "Amara Mensah", Email: "amara@passportpals.app",
			PasswordHash: passwordHash, Age: 30, City: "Accra", Country: "Ghana",
			Bio:       "Festival dancer and jollof defender. My door is always open.",
			Interests: []string{"dance", "festivals", "cooking", "live-music"},
			Languages: []string{"English", "Twi", "French"}, PrimaryLanguage: "English",
			HostingEnabled: true, MaxGuests: 3, HouseVibe: "social-open",
			Level: "Superhost", AvgRating: 4.8, ReviewCount: 28,
			VerificationStatus: domain.Verified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 35, SocialBattery: 90, FoodAdventure: 80, DailyPace: 75},
			TravelStyle:        []string{"people", "culture", "nightlife"},
			RomanticIntent:     domain.IntentOpen,
			AgePreference:      domain.AgeRange{Min: 23, Max: 45},
			CreatedAt:          daysAgo(480),
		},
		{
			ID: "lucas-rio", Name: "Lucas Ferreira", Email: "lucas@passportpals.app",
			PasswordHash: passwordHash, Age: 33, City: "Rio de Janeiro", Country: "Brazil",
			Bio:       "Surf before breakfast, samba after dinner.",
			Interests: []string{"surfing", "hiking", "dance", "street-food"},
			Languages: []string{"Portuguese", "Spanish", "English"}, PrimaryLanguage: "Portuguese",
			HostingEnabled: true, MaxGuests: 2, HouseVibe: "beach-casual",
			Level: "Explorer", AvgRating: 4.3, ReviewCount: 11,
			VerificationStatus: domain.Unverified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 20, SocialBattery: 85, FoodAdventure: 75, DailyPace: 80},
			TravelStyle:        []string{"adventure", "nature", "nightlife"},
			RomanticIntent:     domain.IntentOpen,
			AgePreference:      domain.AgeRange{Min: 24, Max: 40},
			CreatedAt:          daysAgo(260),
		},
		{
			ID: "ingrid-reykjavik", Name: "Ingrid Jônsdôttir", Email: "ingrid@passportpals.app",
			PasswordHash: passwordHash, Age: 41, City: "Reykjavik", Country: "Iceland",
			Bio:       "Northern lights chaser with a geothermal hot tub.",
			Interests: []string{"hiking", "photography", "geology", "knitting"},
			Languages: []string{"Icelandic", "English", "Danish"}, PrimaryLanguage: "Icelandic",
			HostingEnabled: true, MaxGuests: 2, HouseVibe: "nature-retreat",
			Level: "Superhost", AvgRating: 4.9, ReviewCount: 38,
			VerificationStatus: domain.Verified,
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 80, SocialBattery: 35, FoodAdventure: 45, DailyPace: 35},
			TravelStyle:        []string{"nature", "wellness"},
			RomanticIntent:     domain.IntentPlatonicOnly,
			AgePreference:      domain.AgeRange{Min: 28, Max: 60},
			CreatedAt:          daysAgo(820),
		},
	}
}
