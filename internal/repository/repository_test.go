package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"project-recommender/internal/domain/project"
	"project-recommender/internal/domain/skill"
	"project-recommender/internal/domain/student"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestBuildProjectListQuery(t *testing.T) {
	q, args := buildProjectListQuery(project.ListFilter{})
	if strings.Contains(q, "WHERE") || len(args) != 0 {
		t.Fatalf("expected unfiltered query, got %q %v", q, args)
	}
	if !strings.HasSuffix(q, "ORDER BY p.created_at DESC, p.id ASC") {
		t.Fatalf("expected newest-first ordering, got %q", q)
	}

	q, args = buildProjectListQuery(project.ListFilter{Difficulty: "beginner", Category: " Web ", Search: "50%_off"})
	for _, want := range []string{
		"UPPER(p.difficulty_level) = UPPER($1)",
		"UPPER(p.category) = UPPER($2)",
		"(p.title ILIKE $3 OR p.description ILIKE $4)",
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("expected %q in %q", want, q)
		}
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
	if args[1] != "Web" {
		t.Fatalf("expected trimmed category, got %v", args[1])
	}
	if args[2] != `%50\%\_off%` {
		t.Fatalf("expected escaped like pattern, got %v", args[2])
	}
}

func TestStudentSkillRepository_FindByStudentID_NormalizesLevels(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	db := &fakeDB{rows: [][]any{
		{a, "Go", "Advanced", 3},
		{b, "SQL", "wizard", 0},
	}}

	got, err := NewPostgresStudentSkillRepository(db).FindByStudentID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(got))
	}
	if got[0].ProficiencyLevel != skill.Advanced || got[0].YearsExperience != 3 {
		t.Fatalf("unexpected first skill: %+v", got[0])
	}
	if got[1].ProficiencyLevel != skill.Beginner {
		t.Fatalf("expected unknown level to fall back to Beginner, got %v", got[1].ProficiencyLevel)
	}
}

func TestStudentSkillRepository_ReplaceForStudent(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresStudentSkillRepository(db)

	err := repo.ReplaceForStudent(context.Background(), uuid.New(), []skill.StudentSkill{
		{SkillID: uuid.New(), ProficiencyLevel: skill.Intermediate, YearsExperience: 1},
		{SkillID: uuid.New(), ProficiencyLevel: skill.Advanced, YearsExperience: 4},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !db.tx.committed {
		t.Fatalf("expected commit")
	}
	if len(db.tx.execs) != 3 {
		t.Fatalf("expected delete + 2 inserts, got %d", len(db.tx.execs))
	}
	if !strings.HasPrefix(db.tx.execs[0].query, "DELETE FROM student_skills") {
		t.Fatalf("expected delete first, got %q", db.tx.execs[0].query)
	}
	if db.tx.execs[1].args[2] != "Intermediate" {
		t.Fatalf("expected level stored as label, got %v", db.tx.execs[1].args[2])
	}
}

func TestStudentSkillRepository_ReplaceForStudent_UnknownSkill(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{failOnExec: 2, execErr: &pgconn.PgError{Code: pgForeignKeyViolation}}}
	repo := NewPostgresStudentSkillRepository(db)

	err := repo.ReplaceForStudent(context.Background(), uuid.New(), []skill.StudentSkill{{SkillID: uuid.New()}})
	if !errors.Is(err, student.ErrUnknownSkill) {
		t.Fatalf("expected ErrUnknownSkill, got %v", err)
	}
	if db.tx.committed || !db.tx.rolledBack {
		t.Fatalf("expected rollback without commit")
	}
}

func TestStudentRepository_GetByID_NotFound(t *testing.T) {
	db := &fakeDB{rowErr: pgx.ErrNoRows}
	_, err := NewPostgresStudentRepository(db).GetStudentByID(context.Background(), uuid.New())
	if !errors.Is(err, student.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStudentRepository_CreateStudent_DuplicateEmail(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{failOnExec: 1, execErr: &pgconn.PgError{Code: pgUniqueViolation}}}
	err := NewPostgresStudentRepository(db).CreateStudent(context.Background(), student.Student{ID: uuid.New()}, nil)
	if !errors.Is(err, student.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if !db.tx.rolledBack {
		t.Fatalf("expected rollback")
	}
}

func TestStudentRepository_UpdateStudent_NotFound(t *testing.T) {
	db := &fakeDB{affected: 0}
	err := NewPostgresStudentRepository(db).UpdateStudent(context.Background(), student.Student{ID: uuid.New()})
	if !errors.Is(err, student.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectRepository_GetByID(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()
	db := &fakeDB{row: []any{id, "Portfolio", "desc", "intermediate", "Web", "Admin", now}}

	p, err := NewPostgresProjectRepository(db).GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ID != id || p.Difficulty != skill.Intermediate || p.CreatedBy != "Admin" {
		t.Fatalf("unexpected project: %+v", p)
	}
}

func TestProjectRepository_Create_DuplicateTitle(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{failOnExec: 1, execErr: &pgconn.PgError{Code: pgUniqueViolation}}}
	err := NewPostgresProjectRepository(db).Create(context.Background(), project.Project{ID: uuid.New(), Title: "X"}, nil)
	if !errors.Is(err, project.ErrTitleTaken) {
		t.Fatalf("expected ErrTitleTaken, got %v", err)
	}
}

func TestProjectRepository_Create_WritesRequirements(t *testing.T) {
	db := &fakeDB{}
	p := project.Project{ID: uuid.New(), Title: "X", Difficulty: skill.Advanced, CreatedBy: "Admin"}
	reqs := []skill.ProjectSkill{
		{SkillID: uuid.New(), RequiredLevel: skill.Intermediate, IsMandatory: true},
		{SkillID: uuid.New(), RequiredLevel: skill.Beginner},
	}

	if err := NewPostgresProjectRepository(db).Create(context.Background(), p, reqs); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(db.tx.execs) != 3 || !db.tx.committed {
		t.Fatalf("expected project + 2 requirement inserts committed")
	}
	if db.tx.execs[0].args[3] != "Advanced" {
		t.Fatalf("expected difficulty label, got %v", db.tx.execs[0].args[3])
	}
	if db.tx.execs[1].args[3] != true {
		t.Fatalf("expected mandatory flag persisted")
	}
}

func TestProjectSkillRepository_FindByProjectIDs_Groups(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	db := &fakeDB{rows: [][]any{
		{p1, s1, "Go", "Programming", "Advanced", true},
		{p1, s2, "SQL", "Database", "Intermediate", false},
		{p2, s3, "React", "Web", "", true},
	}}
	repo := NewPostgresProjectSkillRepository(db)

	got, err := repo.FindByProjectIDs(context.Background(), []uuid.UUID{p1, p2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got[p1]) != 2 || len(got[p2]) != 1 {
		t.Fatalf("unexpected grouping: %v", got)
	}
	if got[p2][0].RequiredLevel != skill.Beginner {
		t.Fatalf("expected empty level to default to Beginner")
	}

	empty, err := repo.FindByProjectIDs(context.Background(), nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty map without query, got %v %v", empty, err)
	}
	if len(db.queries) != 1 {
		t.Fatalf("expected no query for empty id list")
	}
}

func TestProjectSkillRepository_FindByProjectID_NoRequirements(t *testing.T) {
	db := &fakeDB{}
	got, err := NewPostgresProjectSkillRepository(db).FindByProjectID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestSkillRepository_GetAllSkills_CategoryFilter(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresSkillRepository(db)

	if _, err := repo.GetAllSkills(context.Background(), " web "); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := repo.GetAllSkills(context.Background(), ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(db.queries[0].query, "WHERE UPPER(category) = UPPER($1)") || db.queries[0].args[0] != "web" {
		t.Fatalf("expected category filter query, got %q %v", db.queries[0].query, db.queries[0].args)
	}
	if strings.Contains(db.queries[1].query, "WHERE") {
		t.Fatalf("expected unfiltered query")
	}
}
