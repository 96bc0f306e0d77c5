package domain

// RomanticIntent values a profile can declare.
const (
	IntentOpen         = "open"
	IntentPlatonicOnly = "platonic-only"
)

// Filters narrow the swipe candidate pool. Each criterion applies only when
// set to a non-default value; they combine conjunctively.
type Filters struct {
	AgeRange     AgeRange `json:"age_range"`
	Languages    []string `json:"languages"`
	Interests    []string `json:"interests"`
	HostingOnly  bool     `json:"hosting_only"`
	VerifiedOnly bool     `json:"verified_only"`
	PlatonicOnly bool     `json:"platonic_only"`
}

// DefaultFilters is the widest filter set.
func DefaultFilters() Filters {
	return Filters{AgeRange: AgeRange{Min: 18, Max: 65}}
}
