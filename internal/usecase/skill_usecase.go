package usecase

import (
	"context"

	"project-recommender/internal/domain/skill"
	"project-recommender/internal/repository"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context, category string) ([]skill.Skill, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context, category string) ([]skill.Skill, error) {
	items, err := u.repo.GetAllSkills(ctx, category)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
