package student

import (
	"context"
	"errors"

	"project-recommender/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("student not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrUnknownSkill = errors.New("unknown skill")
)

type Repository interface {
	CreateStudent(ctx context.Context, s Student, skills []skill.StudentSkill) error
	GetStudentByID(ctx context.Context, id uuid.UUID) (Student, error)
	GetStudentByEmail(ctx context.Context, email string) (Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateStudent(ctx context.Context, s Student) error
}
