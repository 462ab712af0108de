package project

import (
	"errors"
	"time"

	"project-recommender/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("project not found")
	ErrTitleTaken   = errors.New("project title already exists")
	ErrUnknownSkill = errors.New("unknown skill")
)

type Project struct {
	ID          uuid.UUID
	Title       string
	Description string
	Difficulty  skill.ProficiencyLevel
	Category    string
	CreatedBy   string
	CreatedAt   time.Time
}

type WithSkills struct {
	Project
	Skills []skill.ProjectSkill
}

type ListFilter struct {
	Difficulty string
	Category   string
	Search     string
}
