package usecase

import (
	"context"
	"errors"

	"project-recommender/internal/domain/matching"
	"project-recommender/internal/domain/project"
	"project-recommender/internal/domain/skill"
	"project-recommender/internal/domain/student"
	"project-recommender/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const NoSkillsMessage = "No skills found. Please add skills to your profile."

type RecommendationItem struct {
	Project    project.Project
	Skills     []skill.ProjectSkill
	MatchScore float64
}

// RecommendationOutput is either a ranked list or, for a student without
// skills, an empty list with Message set.
type RecommendationOutput struct {
	StudentID       uuid.UUID
	Message         string
	Recommendations []RecommendationItem
}

type RecommendationUsecase interface {
	ComputeRecommendations(ctx context.Context, studentID uuid.UUID) (RecommendationOutput, error)
}

type Recommendation struct {
	students      student.Repository
	studentSkills repository.StudentSkillRepository
	projects      repository.ProjectRepository
	projectSkills repository.ProjectSkillRepository
}

func NewRecommendationUsecase(
	students student.Repository,
	studentSkills repository.StudentSkillRepository,
	projects repository.ProjectRepository,
	projectSkills repository.ProjectSkillRepository,
) *Recommendation {
	return &Recommendation{
		students:      students,
		studentSkills: studentSkills,
		projects:      projects,
		projectSkills: projectSkills,
	}
}

func (u *Recommendation) ComputeRecommendations(ctx context.Context, studentID uuid.UUID) (RecommendationOutput, error) {
	if studentID == uuid.Nil {
		return RecommendationOutput{}, ErrInvalidInput
	}

	if _, err := u.students.GetStudentByID(ctx, studentID); err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return RecommendationOutput{}, ErrStudentNotFound
		}
		return RecommendationOutput{}, ErrInternal
	}

	var (
		ss       []skill.StudentSkill
		projects []project.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ss, err = u.studentSkills.FindByStudentID(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = u.projects.List(gctx, project.ListFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return RecommendationOutput{}, ErrInternal
	}

	levels := make(map[uuid.UUID]skill.ProficiencyLevel, len(ss))
	for _, it := range ss {
		levels[it.SkillID] = it.ProficiencyLevel
	}
	if len(levels) == 0 {
		return RecommendationOutput{
			StudentID:       studentID,
			Message:         NoSkillsMessage,
			Recommendations: []RecommendationItem{},
		}, nil
	}

	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	reqsByID, err := u.projectSkills.FindByProjectIDs(ctx, ids)
	if err != nil {
		return RecommendationOutput{}, ErrInternal
	}

	byID := make(map[uuid.UUID]project.Project, len(projects))
	candidates := make([]matching.Candidate, 0, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
		candidates = append(candidates, matching.Candidate{
			ProjectID:    p.ID,
			Requirements: toRequirements(reqsByID[p.ID]),
		})
	}

	ranked, _ := matching.Rank(levels, candidates)

	out := make([]RecommendationItem, 0, len(ranked))
	for _, r := range ranked {
		reqs := reqsByID[r.ProjectID]
		if reqs == nil {
			reqs = []skill.ProjectSkill{}
		}
		out = append(out, RecommendationItem{
			Project:    byID[r.ProjectID],
			Skills:     reqs,
			MatchScore: r.Score,
		})
	}

	return RecommendationOutput{StudentID: studentID, Recommendations: out}, nil
}

func toRequirements(in []skill.ProjectSkill) []matching.Requirement {
	out := make([]matching.Requirement, 0, len(in))
	for _, r := range in {
		out = append(out, matching.Requirement{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			RequiredLevel: r.RequiredLevel,
			IsMandatory:   r.IsMandatory,
		})
	}
	return out
}
