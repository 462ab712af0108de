package matching

import (
	"math"
	"sort"

	"project-recommender/internal/domain/skill"

	"github.com/google/uuid"
)

const (
	// NoRequirementsScore is returned for projects that list no required skills.
	NoRequirementsScore = 50.0

	fullLevelBonus    = 10
	partialLevelBonus = 5
	maxBonusPerReq    = 10
	maxScore          = 100.0
)

type Requirement struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel skill.ProficiencyLevel
	IsMandatory   bool
}

type Candidate struct {
	ProjectID    uuid.UUID
	Requirements []Requirement
}

type MatchResult struct {
	ProjectID    uuid.UUID
	Score        float64
	Requirements []Requirement
}

type Breakdown struct {
	Total            int
	Matched          int
	ProficiencyBonus int
	BaseScore        float64
	CappedBonus      int
	Score            float64
}

// Score returns how well studentSkills cover reqs, in [0,100] rounded to two
// decimals. IsMandatory does not change the weight of a requirement.
func Score(studentSkills map[uuid.UUID]skill.ProficiencyLevel, reqs []Requirement) float64 {
	return Calculate(studentSkills, reqs).Score
}

func Calculate(studentSkills map[uuid.UUID]skill.ProficiencyLevel, reqs []Requirement) Breakdown {
	if len(reqs) == 0 {
		return Breakdown{Score: NoRequirementsScore}
	}

	b := Breakdown{Total: len(reqs)}
	for _, r := range reqs {
		lvl, ok := studentSkills[r.SkillID]
		if !ok {
			continue
		}
		b.Matched++

		studentRank := lvl.Rank()
		requiredRank := r.RequiredLevel.Rank()
		switch {
		case studentRank >= requiredRank:
			b.ProficiencyBonus += fullLevelBonus
		case studentRank >= requiredRank-1:
			b.ProficiencyBonus += partialLevelBonus
		}
	}

	b.BaseScore = float64(b.Matched) / float64(b.Total) * 100
	b.CappedBonus = minInt(b.ProficiencyBonus, b.Total*maxBonusPerReq)

	final := b.BaseScore + float64(b.CappedBonus)
	if final > maxScore {
		final = maxScore
	}
	if final < 0 {
		final = 0
	}
	b.Score = round2(final)
	return b
}

// Rank scores every candidate and orders them by score, highest first.
// Equal scores keep their input order. The boolean is false when the student
// has no skills, in which case nothing is ranked.
func Rank(studentSkills map[uuid.UUID]skill.ProficiencyLevel, candidates []Candidate) ([]MatchResult, bool) {
	if len(studentSkills) == 0 {
		return []MatchResult{}, false
	}

	out := make([]MatchResult, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, MatchResult{
			ProjectID:    c.ProjectID,
			Score:        Score(studentSkills, c.Requirements),
			Requirements: c.Requirements,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
