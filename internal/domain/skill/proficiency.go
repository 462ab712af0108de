package skill

import "strings"

// ProficiencyLevel is an ordinal skill strength. The zero value is not a
// valid level and ranks as Beginner.
type ProficiencyLevel int

const (
	Beginner     ProficiencyLevel = 1
	Intermediate ProficiencyLevel = 2
	Advanced     ProficiencyLevel = 3
)

// ParseProficiencyLevel maps a stored or submitted label onto a level.
// Unknown labels fall back to Beginner.
func ParseProficiencyLevel(s string) ProficiencyLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intermediate":
		return Intermediate
	case "advanced":
		return Advanced
	default:
		return Beginner
	}
}

// IsKnownProficiencyLevel reports whether s names one of the three levels.
func IsKnownProficiencyLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "intermediate", "advanced":
		return true
	default:
		return false
	}
}

func (l ProficiencyLevel) Rank() int {
	if l < Beginner || l > Advanced {
		return int(Beginner)
	}
	return int(l)
}

func (l ProficiencyLevel) String() string {
	switch l.Rank() {
	case int(Intermediate):
		return "Intermediate"
	case int(Advanced):
		return "Advanced"
	default:
		return "Beginner"
	}
}
