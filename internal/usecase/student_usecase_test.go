package usecase

import (
	"context"
	"errors"
	"testing"

	"project-recommender/internal/domain/skill"
	"project-recommender/internal/domain/student"

	"github.com/google/uuid"
)

func newPasswordlessStudent(email string) student.Student {
	return student.Student{ID: uuid.New(), Name: "Someone", Email: email}
}

func TestStudent_GetProfile(t *testing.T) {
	students := newFakeStudentRepo()
	skills := newFakeStudentSkillRepo()
	s := newPasswordlessStudent("a@b.c")
	s.PasswordHash = "hash"
	students.put(s)
	skills.bySt[s.ID] = []skill.StudentSkill{{SkillID: uuid.New(), SkillName: "Go"}}

	uc := NewStudentUsecase(students, skills)
	p, err := uc.GetProfile(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.PasswordHash != "" || len(p.Skills) != 1 {
		t.Fatalf("unexpected profile: %+v", p)
	}

	if _, err := uc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	if _, err := uc.GetProfile(context.Background(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStudent_CreateStudent(t *testing.T) {
	students := newFakeStudentRepo()
	uc := NewStudentUsecase(students, newFakeStudentSkillRepo())
	goID := uuid.New()

	id, err := uc.CreateStudent(context.Background(), CreateStudentInput{
		Name:   "Ana",
		Email:  "Ana@B.c",
		Skills: []StudentSkillInput{{SkillID: goID, YearsExperience: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if students.byID[id].Email != "ana@b.c" {
		t.Fatalf("expected normalized email")
	}
	got := students.skills[id]
	if len(got) != 1 || got[0].ProficiencyLevel != skill.Beginner {
		t.Fatalf("expected default Beginner skill, got %+v", got)
	}

	if _, err := uc.CreateStudent(context.Background(), CreateStudentInput{Name: "X", Email: "ana@b.c"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	_, err = uc.CreateStudent(context.Background(), CreateStudentInput{
		Name:   "Y",
		Email:  "y@b.c",
		Skills: []StudentSkillInput{{SkillID: goID, ProficiencyLevel: "Guru"}},
	})
	if !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}

func TestStudent_UpdateStudent_ReplacesSkills(t *testing.T) {
	students := newFakeStudentRepo()
	skills := newFakeStudentSkillRepo()
	s := newPasswordlessStudent("a@b.c")
	students.put(s)

	goID, sqlID := uuid.New(), uuid.New()
	skills.known[goID] = "Go"
	skills.known[sqlID] = "SQL"
	skills.bySt[s.ID] = []skill.StudentSkill{{SkillID: goID, SkillName: "Go", ProficiencyLevel: skill.Beginner}}

	uc := NewStudentUsecase(students, skills)
	p, err := uc.UpdateStudent(context.Background(), s.ID, UpdateStudentInput{
		Name:   "Renamed",
		Email:  "new@b.c",
		Skills: []StudentSkillInput{{SkillID: sqlID, ProficiencyLevel: "advanced", YearsExperience: 4}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Name != "Renamed" || p.Email != "new@b.c" {
		t.Fatalf("unexpected student: %+v", p.Student)
	}
	if len(p.Skills) != 1 || p.Skills[0].SkillID != sqlID || p.Skills[0].ProficiencyLevel != skill.Advanced {
		t.Fatalf("expected skill list replaced, got %+v", p.Skills)
	}
}

func TestStudent_UpdateStudent_Errors(t *testing.T) {
	students := newFakeStudentRepo()
	skills := newFakeStudentSkillRepo()
	s := newPasswordlessStudent("a@b.c")
	students.put(s)
	uc := NewStudentUsecase(students, skills)

	_, err := uc.UpdateStudent(context.Background(), uuid.New(), UpdateStudentInput{Name: "A", Email: "z@b.c"})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}

	_, err = uc.UpdateStudent(context.Background(), s.ID, UpdateStudentInput{
		Name:   "A",
		Email:  "a@b.c",
		Skills: []StudentSkillInput{{SkillID: uuid.New()}},
	})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}

	dup := uuid.New()
	_, err = uc.UpdateStudent(context.Background(), s.ID, UpdateStudentInput{
		Name:   "A",
		Email:  "a@b.c",
		Skills: []StudentSkillInput{{SkillID: dup}, {SkillID: dup}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate skill, got %v", err)
	}
}

func TestSkill_ListSkills(t *testing.T) {
	repo := &fakeSkillRepo{items: []skill.Skill{{ID: uuid.New(), Name: "Go", Category: "Programming"}}}
	uc := NewSkillUsecase(repo)

	items, err := uc.ListSkills(context.Background(), "Programming")
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected result: %v %v", items, err)
	}
	if repo.got != "Programming" {
		t.Fatalf("expected category passed through")
	}

	repo.err = errors.New("boom")
	if _, err := uc.ListSkills(context.Background(), ""); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
