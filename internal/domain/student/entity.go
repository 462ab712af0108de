package student

import (
	"time"

	"project-recommender/internal/domain/skill"

	"github.com/google/uuid"
)

type Student struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	Student
	Skills []skill.StudentSkill
}
