package usecase

import (
	"context"
	"errors"
	"testing"

	"project-recommender/internal/domain/project"
	"project-recommender/internal/domain/skill"

	"github.com/google/uuid"
)

func TestProject_CreateProject_Defaults(t *testing.T) {
	repo := &fakeProjectRepo{}
	notifier := &fakeNotifier{}
	uc := NewProjectUsecase(repo, fakeProjectSkillRepo{}, notifier)

	optional := false
	goID, sqlID := uuid.New(), uuid.New()
	id, err := uc.CreateProject(context.Background(), CreateProjectInput{
		Title: "  Todo API ",
		Skills: []ProjectSkillInput{
			{SkillID: goID, RequiredLevel: "Intermediate"},
			{SkillID: sqlID, IsMandatory: &optional},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one project created")
	}
	p := repo.created[0]
	if p.ID != id || p.Title != "Todo API" || p.Difficulty != skill.Beginner || p.CreatedBy != "Admin" {
		t.Fatalf("unexpected project: %+v", p)
	}
	reqs := repo.createdRq[0]
	if reqs[0].RequiredLevel != skill.Intermediate || !reqs[0].IsMandatory {
		t.Fatalf("unexpected first requirement: %+v", reqs[0])
	}
	if reqs[1].RequiredLevel != skill.Beginner || reqs[1].IsMandatory {
		t.Fatalf("unexpected second requirement: %+v", reqs[1])
	}
	if len(notifier.created) != 1 || notifier.created[0].ID != id {
		t.Fatalf("expected notifier called with created project")
	}
}

func TestProject_CreateProject_DuplicateTitle(t *testing.T) {
	existing := project.Project{ID: uuid.New(), Title: "Portfolio Site"}
	repo := &fakeProjectRepo{items: []project.Project{existing}}
	notifier := &fakeNotifier{}
	uc := NewProjectUsecase(repo, fakeProjectSkillRepo{}, notifier)

	_, err := uc.CreateProject(context.Background(), CreateProjectInput{Title: "portfolio site"})
	if !errors.Is(err, ErrProjectTitleTaken) {
		t.Fatalf("expected ErrProjectTitleTaken, got %v", err)
	}
	var taken *TitleTakenError
	if !errors.As(err, &taken) || taken.ExistingID != existing.ID {
		t.Fatalf("expected existing id in error, got %v", err)
	}
	if len(repo.created) != 0 || len(notifier.created) != 0 {
		t.Fatalf("expected nothing created or broadcast")
	}
}

func TestProject_CreateProject_Validation(t *testing.T) {
	uc := NewProjectUsecase(&fakeProjectRepo{}, fakeProjectSkillRepo{}, nil)

	cases := []struct {
		name string
		in   CreateProjectInput
		want error
	}{
		{"missing title", CreateProjectInput{Title: "  "}, ErrInvalidInput},
		{"bad difficulty", CreateProjectInput{Title: "X", Difficulty: "expert"}, ErrInvalidProficiencyLevel},
		{"bad required level", CreateProjectInput{Title: "X", Skills: []ProjectSkillInput{{SkillID: uuid.New(), RequiredLevel: "pro"}}}, ErrInvalidProficiencyLevel},
		{"nil skill id", CreateProjectInput{Title: "X", Skills: []ProjectSkillInput{{}}}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateProject(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestProject_CreateProject_UnknownSkill(t *testing.T) {
	repo := &fakeProjectRepo{createErr: project.ErrUnknownSkill}
	uc := NewProjectUsecase(repo, fakeProjectSkillRepo{}, nil)

	_, err := uc.CreateProject(context.Background(), CreateProjectInput{Title: "X", Skills: []ProjectSkillInput{{SkillID: uuid.New()}}})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestProject_ListAndGet(t *testing.T) {
	a := project.Project{ID: uuid.New(), Title: "A"}
	b := project.Project{ID: uuid.New(), Title: "B"}
	goReq := skill.ProjectSkill{SkillID: uuid.New(), SkillName: "Go", RequiredLevel: skill.Advanced}
	uc := NewProjectUsecase(
		&fakeProjectRepo{items: []project.Project{a, b}},
		fakeProjectSkillRepo{byProject: map[uuid.UUID][]skill.ProjectSkill{a.ID: {goReq}}},
		nil,
	)

	items, err := uc.ListProjects(context.Background(), project.ListFilter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 || items[0].ID != a.ID || items[1].ID != b.ID {
		t.Fatalf("expected listing order preserved, got %+v", items)
	}
	if len(items[0].Skills) != 1 || items[1].Skills == nil || len(items[1].Skills) != 0 {
		t.Fatalf("unexpected skills: %+v", items)
	}

	got, err := uc.GetProject(context.Background(), a.ID)
	if err != nil || got.Title != "A" || len(got.Skills) != 1 {
		t.Fatalf("unexpected project: %+v %v", got, err)
	}
	if _, err := uc.GetProject(context.Background(), uuid.New()); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
