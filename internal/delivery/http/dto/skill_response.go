package dto

import (
	"project-recommender/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillResponse struct {
	SkillID     uuid.UUID `json:"skill_id"`
	SkillName   string    `json:"skill_name"`
	SkillType   string    `json:"skill_type"`
	Description string    `json:"description"`
}

func NewSkillResponses(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SkillResponse{
			SkillID:     it.ID,
			SkillName:   it.Name,
			SkillType:   it.Category,
			Description: it.Description,
		})
	}
	return out
}
