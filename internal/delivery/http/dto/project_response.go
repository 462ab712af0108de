package dto

import (
	"time"

	"project-recommender/internal/domain/project"
	"project-recommender/internal/domain/skill"

	"github.com/google/uuid"
)

type ProjectSkillResponse struct {
	SkillID                  uuid.UUID `json:"skill_id"`
	SkillName                string    `json:"skill_name"`
	SkillType                string    `json:"skill_type,omitempty"`
	RequiredProficiencyLevel string    `json:"required_proficiency_level"`
	IsMandatory              bool      `json:"is_mandatory"`
}

type ProjectResponse struct {
	ProjectID       uuid.UUID              `json:"project_id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	DifficultyLevel string                 `json:"difficulty_level"`
	Category        string                 `json:"category"`
	CreatedBy       string                 `json:"created_by"`
	CreatedAt       time.Time              `json:"created_at"`
	Skills          []ProjectSkillResponse `json:"skills"`
}

type ProjectCreatedResponse struct {
	ProjectID uuid.UUID `json:"project_id"`
}

func NewProjectResponse(p project.Project, reqs []skill.ProjectSkill) ProjectResponse {
	skills := make([]ProjectSkillResponse, 0, len(reqs))
	for _, r := range reqs {
		skills = append(skills, ProjectSkillResponse{
			SkillID:                  r.SkillID,
			SkillName:                r.SkillName,
			SkillType:                r.SkillCategory,
			RequiredProficiencyLevel: r.RequiredLevel.String(),
			IsMandatory:              r.IsMandatory,
		})
	}
	return ProjectResponse{
		ProjectID:       p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DifficultyLevel: p.Difficulty.String(),
		Category:        p.Category,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       p.CreatedAt,
		Skills:          skills,
	}
}

func NewProjectResponses(items []project.WithSkills) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewProjectResponse(it.Project, it.Skills))
	}
	return out
}
