package dto

import (
	"time"

	"project-recommender/internal/domain/student"

	"github.com/google/uuid"
)

type StudentSkillResponse struct {
	SkillID           uuid.UUID `json:"skill_id"`
	SkillName         string    `json:"skill_name"`
	ProficiencyLevel  string    `json:"proficiency_level"`
	YearsOfExperience int       `json:"years_of_experience"`
}

type StudentProfileResponse struct {
	StudentID uuid.UUID              `json:"student_id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Skills    []StudentSkillResponse `json:"skills"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type AuthResponse struct {
	Student      StudentProfileResponse `json:"student"`
	AccessToken  string                 `json:"access_token"`
	RefreshToken string                 `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type StudentCreatedResponse struct {
	StudentID uuid.UUID `json:"student_id"`
}

func NewStudentProfileResponse(p student.Profile) StudentProfileResponse {
	skills := make([]StudentSkillResponse, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, StudentSkillResponse{
			SkillID:           s.SkillID,
			SkillName:         s.SkillName,
			ProficiencyLevel:  s.ProficiencyLevel.String(),
			YearsOfExperience: s.YearsExperience,
		})
	}
	return StudentProfileResponse{
		StudentID: p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Skills:    skills,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
