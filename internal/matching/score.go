// Package matching implements the compatibility scoring and candidate
// ranking used to build the swipe stack. Scoring is deterministic and pure:
// the same pair of profiles always produces the same result.
package matching

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/passportpals/passportpals-backend/internal/domain"
)

// Score is the result of comparing a viewer against one candidate.
type Score struct {
	Percent int      `json:"percent"`
	Reasons []string `json:"reasons"`
}

// Sub-score weights. They sum to 1.0.
const (
	weightInterests    = 0.25
	weightPersonality  = 0.20
	weightLanguages    = 0.20
	weightAge          = 0.10
	weightTravelStyle  = 0.15
	weightVerification = 0.05
	weightRating       = 0.05
)

// Reported scores are clamped away from both extremes: nothing below 45,
// nothing at a perfect 100.
const (
	minPercent = 45
	maxPercent = 99
)

func intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	var common []string
	for _, v := range a {
		if _, ok := set[v]; ok {
			common = append(common, v)
		}
	}
	return common
}

func interestScore(viewer, candidate *domain.Profile) (float64, []string) {
	common := intersect(viewer.Interests, candidate.Interests)
	score := math.Min(float64(len(common))/3*100, 100)
	if len(common) > 3 {
		common = common[:3]
	}
	return score, common
}

var personalityInsights = map[string]string{
	"planningStyle": "Same travel planning style",
	"socialBattery": "Similar social energy",
	"foodAdventure": "Both love food adventures",
	"dailyPace":     "Same daily pace",
}

func personalityScore(viewer, candidate *domain.Profile) (float64, string) {
	dims := []struct {
		key  string
		a, b int
	}{
		{"planningStyle", viewer.PersonalitySliders.PlanningStyle, candidate.PersonalitySliders.PlanningStyle},
		{"socialBattery", viewer.PersonalitySliders.SocialBattery, candidate.PersonalitySliders.SocialBattery},
		{"foodAdventure", viewer.PersonalitySliders.FoodAdventure, candidate.PersonalitySliders.FoodAdventure},
		{"dailyPace", viewer.PersonalitySliders.DailyPace, candidate.PersonalitySliders.DailyPace},
	}

	totalDiff := 0
	closestKey := ""
	closestDiff := math.MaxInt
	for _, d := range dims {
		diff := d.a - d.b
		if diff < 0 {
			diff = -diff
		}
		totalDiff += diff
		if diff < closestDiff {
			closestDiff = diff
			closestKey = d.key
		}
	}

	avgDiff := float64(totalDiff) / float64(len(dims))
	score := math.Max(0, 100-avgDiff)

	insight := ""
	if closestDiff < 20 {
		insight = personalityInsights[closestKey]
	}
	return score, insight
}

func languageScore(viewer, candidate *domain.Profile) (float64, []string) {
	common := intersect(viewer.Languages, candidate.Languages)
	if len(common) == 0 {
		// No shared language still scores: translation apps exist.
		return 30, nil
	}
	return math.Min(float64(50+len(common)*25), 100), common
}

func ageScore(viewer, candidate *domain.Profile) float64 {
	viewerAccepts := viewer.AgePreference.Contains(candidate.Age)
	candidateAccepts := candidate.AgePreference.Contains(viewer.Age)
	if viewerAccepts && candidateAccepts {
		return 100
	}
	if viewerAccepts || candidateAccepts {
		return 60
	}
	ageDiff := viewer.Age - candidate.Age
	if ageDiff < 0 {
		ageDiff = -ageDiff
	}
	return math.Max(0, float64(80-ageDiff*3))
}

func travelStyleScore(viewer, candidate *domain.Profile) (float64, []string) {
	common := intersect(viewer.TravelStyle, candidate.TravelStyle)
	if len(common) == 0 {
		return 40, nil
	}
	return math.Min(float64(50+len(common)*25), 100), common
}

// formatTag turns an interest slug like "street-food" into "Street food".
func formatTag(tag string) string {
	tag = strings.ReplaceAll(tag, "-", " ")
	runes := []rune(tag)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// ScoreProfiles computes the weighted compatibility between a viewer and a
// candidate. The percent is clamped to [45, 99]; Reasons carries up to three
// short explanations of what fired, in priority order.
func ScoreProfiles(viewer, candidate *domain.Profile) Score {
	var reasons []string
	total := 0.0

	interests, sharedInterests := interestScore(viewer, candidate)
	total += interests * weightInterests
	if len(sharedInterests) > 0 {
		named := sharedInterests
		if len(named) > 2 {
			named = named[:2]
		}
		formatted := make([]string, len(named))
		for i, tag := range named {
			formatted[i] = formatTag(tag)
		}
		reasons = append(reasons, fmt.Sprintf("Both love %s", strings.Join(formatted, " & ")))
	}

	personality, insight := personalityScore(viewer, candidate)
	total += personality * weightPersonality
	if insight != "" {
		reasons = append(reasons, insight)
	}

	languages, sharedLanguages := languageScore(viewer, candidate)
	total += languages * weightLanguages
	if len(sharedLanguages) > 0 {
		named := sharedLanguages
		if len(named) > 2 {
			named = named[:2]
		}
		reasons = append(reasons, fmt.Sprintf("Language overlap: %s", strings.Join(named, " + ")))
	}

	total += ageScore(viewer, candidate) * weightAge

	travelStyle, sharedStyles := travelStyleScore(viewer, candidate)
	total += travelStyle * weightTravelStyle
	if len(sharedStyles) > 0 && len(reasons) < 3 {
		reasons = append(reasons, fmt.Sprintf("Both chase %s", sharedStyles[0]))
	}

	verification := 50.0
	if candidate.IsVerified() {
		verification = 100
	}
	total += verification * weightVerification

	total += math.Min(candidate.AvgRating/5*100, 100) * weightRating

	// Backfill so every card shows at least two reasons.
	if len(reasons) < 2 {
		if candidate.HostingEnabled {
			reasons = append(reasons, "Available to host")
		}
		if candidate.ReviewCount > 5 {
			reasons = append(reasons, "Experienced host")
		}
		if len(reasons) < 2 {
			reasons = append(reasons, "Great for cultural exchange")
		}
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}

	percent := int(math.Round(total))
	if percent < minPercent {
		percent = minPercent
	}
	if percent > maxPercent {
		percent = maxPercent
	}

	return Score{Percent: percent, Reasons: reasons}
}
