package usecase

import (
	"context"
	"errors"
	"strings"

	"project-recommender/internal/domain/project"
	"project-recommender/internal/domain/skill"
	"project-recommender/internal/repository"

	"github.com/google/uuid"
)

const defaultProjectAuthor = "Admin"

// TitleTakenError reports the project that already owns a title.
type TitleTakenError struct {
	ExistingID uuid.UUID
}

func (e *TitleTakenError) Error() string {
	return ErrProjectTitleTaken.Error()
}

func (e *TitleTakenError) Is(target error) bool {
	return target == ErrProjectTitleTaken
}

type ProjectSkillInput struct {
	SkillID       uuid.UUID
	RequiredLevel string
	IsMandatory   *bool
}

type CreateProjectInput struct {
	Title       string
	Description string
	Difficulty  string
	Category    string
	CreatedBy   string
	Skills      []ProjectSkillInput
}

// ProjectNotifier is told about projects after they are committed.
type ProjectNotifier interface {
	ProjectCreated(p project.Project)
}

type ProjectUsecase interface {
	ListProjects(ctx context.Context, filter project.ListFilter) ([]project.WithSkills, error)
	GetProject(ctx context.Context, id uuid.UUID) (project.WithSkills, error)
	CreateProject(ctx context.Context, in CreateProjectInput) (uuid.UUID, error)
}

type Project struct {
	projects      repository.ProjectRepository
	projectSkills repository.ProjectSkillRepository
	notifier      ProjectNotifier
}

func NewProjectUsecase(projects repository.ProjectRepository, projectSkills repository.ProjectSkillRepository, notifier ProjectNotifier) *Project {
	return &Project{projects: projects, projectSkills: projectSkills, notifier: notifier}
}

func (u *Project) ListProjects(ctx context.Context, filter project.ListFilter) ([]project.WithSkills, error) {
	items, err := u.projects.List(ctx, filter)
	if err != nil {
		return nil, ErrInternal
	}
	return u.attachSkills(ctx, items)
}

func (u *Project) GetProject(ctx context.Context, id uuid.UUID) (project.WithSkills, error) {
	if id == uuid.Nil {
		return project.WithSkills{}, ErrInvalidInput
	}

	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return project.WithSkills{}, ErrProjectNotFound
		}
		return project.WithSkills{}, ErrInternal
	}

	reqs, err := u.projectSkills.FindByProjectID(ctx, id)
	if err != nil {
		return project.WithSkills{}, ErrInternal
	}
	return project.WithSkills{Project: p, Skills: reqs}, nil
}

func (u *Project) CreateProject(ctx context.Context, in CreateProjectInput) (uuid.UUID, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return uuid.Nil, ErrInvalidInput
	}

	difficulty := skill.Beginner
	if v := strings.TrimSpace(in.Difficulty); v != "" {
		if !skill.IsKnownProficiencyLevel(v) {
			return uuid.Nil, ErrInvalidProficiencyLevel
		}
		difficulty = skill.ParseProficiencyLevel(v)
	}

	reqs, err := toProjectSkills(in.Skills)
	if err != nil {
		return uuid.Nil, err
	}

	if existing, err := u.projects.FindIDByTitle(ctx, title); err == nil {
		return uuid.Nil, &TitleTakenError{ExistingID: existing}
	} else if !errors.Is(err, project.ErrNotFound) {
		return uuid.Nil, ErrInternal
	}

	createdBy := strings.TrimSpace(in.CreatedBy)
	if createdBy == "" {
		createdBy = defaultProjectAuthor
	}

	p := project.Project{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Difficulty:  difficulty,
		Category:    strings.TrimSpace(in.Category),
		CreatedBy:   createdBy,
	}

	if err := u.projects.Create(ctx, p, reqs); err != nil {
		switch {
		case errors.Is(err, project.ErrTitleTaken):
			// Lost a race with a concurrent create of the same title.
			existing, findErr := u.projects.FindIDByTitle(ctx, title)
			if findErr != nil {
				return uuid.Nil, ErrProjectTitleTaken
			}
			return uuid.Nil, &TitleTakenError{ExistingID: existing}
		case errors.Is(err, project.ErrUnknownSkill):
			return uuid.Nil, ErrSkillNotFound
		default:
			return uuid.Nil, ErrInternal
		}
	}

	if u.notifier != nil {
		u.notifier.ProjectCreated(p)
	}
	return p.ID, nil
}

func (u *Project) attachSkills(ctx context.Context, items []project.Project) ([]project.WithSkills, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}

	reqsByID, err := u.projectSkills.FindByProjectIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]project.WithSkills, 0, len(items))
	for _, p := range items {
		reqs := reqsByID[p.ID]
		if reqs == nil {
			reqs = []skill.ProjectSkill{}
		}
		out = append(out, project.WithSkills{Project: p, Skills: reqs})
	}
	return out, nil
}

func toProjectSkills(in []ProjectSkillInput) ([]skill.ProjectSkill, error) {
	out := make([]skill.ProjectSkill, 0, len(in))
	seen := make(map[uuid.UUID]struct{}, len(in))
	for _, it := range in {
		if it.SkillID == uuid.Nil {
			return nil, ErrInvalidInput
		}
		if _, dup := seen[it.SkillID]; dup {
			return nil, ErrInvalidInput
		}
		seen[it.SkillID] = struct{}{}

		level := skill.Beginner
		if strings.TrimSpace(it.RequiredLevel) != "" {
			if !skill.IsKnownProficiencyLevel(it.RequiredLevel) {
				return nil, ErrInvalidProficiencyLevel
			}
			level = skill.ParseProficiencyLevel(it.RequiredLevel)
		}

		mandatory := true
		if it.IsMandatory != nil {
			mandatory = *it.IsMandatory
		}

		out = append(out, skill.ProjectSkill{
			SkillID:       it.SkillID,
			RequiredLevel: level,
			IsMandatory:   mandatory,
		})
	}
	return out, nil
}
