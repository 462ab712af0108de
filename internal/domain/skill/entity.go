package skill

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
}

type StudentSkill struct {
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel ProficiencyLevel
	YearsExperience  int
}

type ProjectSkill struct {
	SkillID       uuid.UUID
	SkillName     string
	SkillCategory string
	RequiredLevel ProficiencyLevel
	IsMandatory   bool
}
