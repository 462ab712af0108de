package repository

import (
	"context"
	"fmt"
	"strings"

	"project-recommender/internal/database"
	"project-recommender/internal/domain/project"
	"project-recommender/internal/domain/skill"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	List(ctx context.Context, filter project.ListFilter) ([]project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	FindIDByTitle(ctx context.Context, title string) (uuid.UUID, error)
	Create(ctx context.Context, p project.Project, reqs []skill.ProjectSkill) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `p.id, p.title, p.description, p.difficulty_level, p.category, p.created_by, p.created_at`

// List returns projects newest first. Rows created in the same instant are
// ordered by id so repeated calls return the same sequence.
func (r *PostgresProjectRepository) List(ctx context.Context, filter project.ListFilter) ([]project.Project, error) {
	q, args := buildProjectListQuery(filter)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		if isNoRows(err) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) FindIDByTitle(ctx context.Context, title string) (uuid.UUID, error) {
	var id uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT id FROM projects WHERE UPPER(title) = UPPER($1)`, strings.TrimSpace(title))
	if err := row.Scan(&id); err != nil {
		if isNoRows(err) {
			return uuid.Nil, project.ErrNotFound
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project, reqs []skill.ProjectSkill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO projects (id, title, description, difficulty_level, category, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Title, p.Description, p.Difficulty.String(), p.Category, p.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return project.ErrTitleTaken
		}
		return err
	}

	for _, req := range reqs {
		_, err := tx.Exec(ctx,
			`INSERT INTO project_skills (project_id, skill_id, required_proficiency_level, is_mandatory)
			 VALUES ($1, $2, $3, $4)`,
			p.ID, req.SkillID, req.RequiredLevel.String(), req.IsMandatory,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %s", project.ErrUnknownSkill, req.SkillID)
			}
			return err
		}
	}

	return tx.Commit(ctx)
}

func buildProjectListQuery(filter project.ListFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, vals ...any) {
		idx := make([]any, 0, len(vals))
		for _, v := range vals {
			args = append(args, v)
			idx = append(idx, len(args))
		}
		where = append(where, fmt.Sprintf(cond, idx...))
	}

	if v := strings.TrimSpace(filter.Difficulty); v != "" {
		add("UPPER(p.difficulty_level) = UPPER($%d)", v)
	}
	if v := strings.TrimSpace(filter.Category); v != "" {
		add("UPPER(p.category) = UPPER($%d)", v)
	}
	if v := strings.TrimSpace(filter.Search); v != "" {
		like := "%" + escapeLike(v) + "%"
		add("(p.title ILIKE $%d OR p.description ILIKE $%d)", like, like)
	}

	q := `SELECT ` + projectColumns + ` FROM projects p`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY p.created_at DESC, p.id ASC`
	return q, args
}

func scanProject(row database.Row) (project.Project, error) {
	var (
		p          project.Project
		difficulty string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &difficulty, &p.Category, &p.CreatedBy, &p.CreatedAt); err != nil {
		return project.Project{}, err
	}
	p.Difficulty = skill.ParseProficiencyLevel(difficulty)
	return p, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
