package usecase

import (
	"context"
	"errors"
	"strings"

	"project-recommender/internal/domain/skill"
	"project-recommender/internal/domain/student"
	"project-recommender/internal/repository"
	ucauth "project-recommender/internal/usecase/auth"

	"github.com/google/uuid"
)

type StudentSkillInput struct {
	SkillID          uuid.UUID
	ProficiencyLevel string
	YearsExperience  int
}

type CreateStudentInput struct {
	Name   string
	Email  string
	Skills []StudentSkillInput
}

// UpdateStudentInput replaces name, email and the whole skill list.
type UpdateStudentInput struct {
	Name   string
	Email  string
	Skills []StudentSkillInput
}

type StudentUsecase interface {
	GetProfile(ctx context.Context, studentID uuid.UUID) (student.Profile, error)
	CreateStudent(ctx context.Context, in CreateStudentInput) (uuid.UUID, error)
	UpdateStudent(ctx context.Context, studentID uuid.UUID, in UpdateStudentInput) (student.Profile, error)
}

type Student struct {
	students student.Repository
	skills   repository.StudentSkillRepository
}

func NewStudentUsecase(students student.Repository, skills repository.StudentSkillRepository) *Student {
	return &Student{students: students, skills: skills}
}

func (u *Student) GetProfile(ctx context.Context, studentID uuid.UUID) (student.Profile, error) {
	if studentID == uuid.Nil {
		return student.Profile{}, ErrInvalidInput
	}

	st, err := u.students.GetStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return student.Profile{}, ErrStudentNotFound
		}
		return student.Profile{}, ErrInternal
	}

	skills, err := u.skills.FindByStudentID(ctx, studentID)
	if err != nil {
		return student.Profile{}, ErrInternal
	}

	st.PasswordHash = ""
	return student.Profile{Student: st, Skills: skills}, nil
}

// CreateStudent registers a student without credentials. Such a student can
// be recommended projects but cannot log in.
func (u *Student) CreateStudent(ctx context.Context, in CreateStudentInput) (uuid.UUID, error) {
	name := strings.TrimSpace(in.Name)
	email := ucauth.NormalizeEmail(in.Email)
	if name == "" || email == "" {
		return uuid.Nil, ErrInvalidInput
	}

	skills, err := toStudentSkills(in.Skills)
	if err != nil {
		return uuid.Nil, err
	}

	st := student.Student{ID: uuid.New(), Name: name, Email: email}
	if err := u.students.CreateStudent(ctx, st, skills); err != nil {
		return uuid.Nil, mapStudentWriteErr(err)
	}
	return st.ID, nil
}

func (u *Student) UpdateStudent(ctx context.Context, studentID uuid.UUID, in UpdateStudentInput) (student.Profile, error) {
	if studentID == uuid.Nil {
		return student.Profile{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	email := ucauth.NormalizeEmail(in.Email)
	if name == "" || email == "" {
		return student.Profile{}, ErrInvalidInput
	}

	skills, err := toStudentSkills(in.Skills)
	if err != nil {
		return student.Profile{}, err
	}

	if err := u.students.UpdateStudent(ctx, student.Student{ID: studentID, Name: name, Email: email}); err != nil {
		return student.Profile{}, mapStudentWriteErr(err)
	}
	if err := u.skills.ReplaceForStudent(ctx, studentID, skills); err != nil {
		return student.Profile{}, mapStudentWriteErr(err)
	}

	return u.GetProfile(ctx, studentID)
}

func toStudentSkills(in []StudentSkillInput) ([]skill.StudentSkill, error) {
	out := make([]skill.StudentSkill, 0, len(in))
	seen := make(map[uuid.UUID]struct{}, len(in))
	for _, it := range in {
		if it.SkillID == uuid.Nil || it.YearsExperience < 0 {
			return nil, ErrInvalidInput
		}
		if _, dup := seen[it.SkillID]; dup {
			return nil, ErrInvalidInput
		}
		seen[it.SkillID] = struct{}{}

		level := skill.Beginner
		if strings.TrimSpace(it.ProficiencyLevel) != "" {
			if !skill.IsKnownProficiencyLevel(it.ProficiencyLevel) {
				return nil, ErrInvalidProficiencyLevel
			}
			level = skill.ParseProficiencyLevel(it.ProficiencyLevel)
		}

		out = append(out, skill.StudentSkill{
			SkillID:          it.SkillID,
			ProficiencyLevel: level,
			YearsExperience:  it.YearsExperience,
		})
	}
	return out, nil
}

func mapStudentWriteErr(err error) error {
	switch {
	case errors.Is(err, student.ErrNotFound):
		return ErrStudentNotFound
	case errors.Is(err, student.ErrEmailTaken):
		return ErrEmailAlreadyRegistered
	case errors.Is(err, student.ErrUnknownSkill):
		return ErrSkillNotFound
	default:
		return ErrInternal
	}
}
