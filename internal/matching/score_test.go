package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passportpals/passportpals-backend/internal/domain"
)

func fullProfile(id string) *domain.Profile {
	return &domain.Profile{
		ID:        id,
		Name:      id,
		Age:       28,
		Interests: []string{"street-food", "hiking", "photography"},
		Languages: []string{"English", "Japanese"},
		PersonalitySliders: domain.PersonalitySliders{
			PlanningStyle: 60,
			SocialBattery: 70,
			FoodAdventure: 80,
			DailyPace:     50,
		},
		TravelStyle:        []string{"slow-travel", "adventure"},
		AgePreference:      domain.AgeRange{Min: 22, Max: 40},
		HostingEnabled:     true,
		AvgRating:          5.0,
		ReviewCount:        12,
		VerificationStatus: domain.Verified,
	}
}

func strangerProfile(id string) *domain.Profile {
	return &domain.Profile{
		ID:        id,
		Name:      id,
		Age:       48,
		Interests: []string{"opera"},
		Languages: []string{"Icelandic"},
		PersonalitySliders: domain.PersonalitySliders{
			PlanningStyle: 95,
			SocialBattery: 95,
			FoodAdventure: 95,
			DailyPace:     95,
		},
		TravelStyle:        []string{"luxury"},
		AgePreference:      domain.AgeRange{Min: 45, Max: 55},
		VerificationStatus: domain.Unverified,
	}
}

func TestScoreProfiles_PercentStaysInsideClamp(t *testing.T) {
	profiles := []*domain.Profile{
		fullProfile("a"),
		strangerProfile("b"),
		{ID: "c", Age: 30, AgePreference: domain.AgeRange{Min: 18, Max: 65}},
		{
			ID:                 "d",
			Age:                19,
			Interests:          []string{"street-food"},
			Languages:          []string{"English"},
			AgePreference:      domain.AgeRange{Min: 18, Max: 25},
			PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 10, SocialBattery: 10, FoodAdventure: 10, DailyPace: 10},
		},
	}

	for _, viewer := range profiles {
		for _, candidate := range profiles {
			if viewer.ID == candidate.ID {
				continue
			}
			score := ScoreProfiles(viewer, candidate)
			assert.GreaterOrEqual(t, score.Percent, 45, "%s vs %s", viewer.ID, candidate.ID)
			assert.LessOrEqual(t, score.Percent, 99, "%s vs %s", viewer.ID, candidate.ID)
			assert.NotEmpty(t, score.Reasons, "%s vs %s", viewer.ID, candidate.ID)
			assert.LessOrEqual(t, len(score.Reasons), 3, "%s vs %s", viewer.ID, candidate.ID)
		}
	}
}

func TestScoreProfiles_IsDeterministic(t *testing.T) {
	viewer := fullProfile("viewer")
	candidate := strangerProfile("candidate")

	first := ScoreProfiles(viewer, candidate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreProfiles(viewer, candidate))
	}
}

func TestScoreProfiles_PerfectOverlapHitsCeiling(t *testing.T) {
	viewer := fullProfile("viewer")
	candidate := fullProfile("candidate")

	score := ScoreProfiles(viewer, candidate)

	// Every weighted sub-score is at its maximum, so only the ceiling clamp
	// keeps this off 100.
	assert.Equal(t, 99, score.Percent)
	require.Len(t, score.Reasons, 3)
	assert.Equal(t, "Both love Street food & Hiking", score.Reasons[0])
	assert.Equal(t, "Same travel planning style", score.Reasons[1])
	assert.Equal(t, "Language overlap: English + Japanese", score.Reasons[2])
}

func TestScoreProfiles_NoOverlapHitsFloor(t *testing.T) {
	viewer := fullProfile("viewer")
	candidate := strangerProfile("candidate")

	score := ScoreProfiles(viewer, candidate)

	assert.Equal(t, 45, score.Percent)
	assert.Contains(t, score.Reasons, "Great for cultural exchange")
}

func TestScoreProfiles_BackfillPrefersHostSignals(t *testing.T) {
	viewer := fullProfile("viewer")
	candidate := strangerProfile("candidate")
	candidate.HostingEnabled = true
	candidate.ReviewCount = 8

	score := ScoreProfiles(viewer, candidate)

	assert.Contains(t, score.Reasons, "Available to host")
	assert.Contains(t, score.Reasons, "Experienced host")
}

func TestScoreProfiles_NoSharedLanguageStillScores(t *testing.T) {
	viewer := fullProfile("viewer")
	candidate := fullProfile("candidate")
	candidate.Languages = []string{"Portuguese"}

	score := ScoreProfiles(viewer, candidate)

	assert.Less(t, score.Percent, 99)
	assert.NotContains(t, score.Reasons, "Language overlap: English + Japanese")
}

func TestOverlapTermsAreSymmetric(t *testing.T) {
	a := fullProfile("a")
	b := strangerProfile("b")
	// Partial overlap in every shared dimension so the terms are non-trivial.
	b.Interests = []string{"hiking", "opera"}
	b.Languages = []string{"English", "Icelandic"}
	b.TravelStyle = []string{"adventure", "luxury"}

	iAB, sharedAB := interestScore(a, b)
	iBA, sharedBA := interestScore(b, a)
	assert.Equal(t, iAB, iBA)
	assert.ElementsMatch(t, sharedAB, sharedBA)

	lAB, _ := languageScore(a, b)
	lBA, _ := languageScore(b, a)
	assert.Equal(t, lAB, lBA)

	tAB, _ := travelStyleScore(a, b)
	tBA, _ := travelStyleScore(b, a)
	assert.Equal(t, tAB, tBA)

	pAB, _ := personalityScore(a, b)
	pBA, _ := personalityScore(b, a)
	assert.Equal(t, pAB, pBA)
}

func TestScoreProfiles_AsymmetricWhenPreferencesDiffer(t *testing.T) {
	a := fullProfile("a")
	b := fullProfile("b")
	// b accepts a's age but not the other way around, and b carries the
	// verification and rating bonuses a lacks.
	a.Age = 45
	a.VerificationStatus = domain.Unverified
	a.AvgRating = 2.0

	forward := ScoreProfiles(a, b)
	backward := ScoreProfiles(b, a)
	assert.NotEqual(t, forward.Percent, backward.Percent)
}

func TestFormatTag(t *testing.T) {
	assert.Equal(t, "Street food", formatTag("street-food"))
	assert.Equal(t, "Hiking", formatTag("hiking"))
	assert.Equal(t, "", formatTag(""))
}
