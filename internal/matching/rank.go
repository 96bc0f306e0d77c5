package matching

import (
	"sort"

	"github.com/passportpals/passportpals-backend/internal/domain"
)

// Result pairs a candidate with their compatibility score.
type Result struct {
	User  *domain.Profile `json:"user"`
	Score Score           `json:"score"`
}

func hasAny(have []string, want []string) bool {
	set := make(map[string]struct{}, len(want))
	for _, v := range want {
		set[v] = struct{}{}
	}
	for _, v := range have {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

func passesFilters(u *domain.Profile, filters domain.Filters) bool {
	if !filters.AgeRange.Contains(u.Age) {
		return false
	}
	if len(filters.Languages) > 0 && !hasAny(u.Languages, filters.Languages) {
		return false
	}
	if len(filters.Interests) > 0 && !hasAny(u.Interests, filters.Interests) {
		return false
	}
	if filters.HostingOnly && !u.HostingEnabled {
		return false
	}
	if filters.VerifiedOnly && !u.IsVerified() {
		return false
	}
	if filters.PlatonicOnly && u.RomanticIntent != domain.IntentPlatonicOnly {
		return false
	}
	return true
}

// Rank filters the pool against the exclusion set and filter criteria, scores
// every remaining candidate against the viewer and returns them ordered by
// descending compatibility. The sort is stable so equal scores keep pool
// order, which makes recomputation idempotent for identical inputs.
func Rank(viewer *domain.Profile, pool []*domain.Profile, excluded map[string]struct{}, filters domain.Filters) []Result {
	results := make([]Result, 0, len(pool))
	for _, u := range pool {
		if u.ID == viewer.ID {
			continue
		}
		if _, ok := excluded[u.ID]; ok {
			continue
		}
		if !passesFilters(u, filters) {
			continue
		}
		results = append(results, Result{User: u, Score: ScoreProfiles(viewer, u)})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.Percent > results[j].Score.Percent
	})
	return results
}
