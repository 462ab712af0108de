package repository

import (
	"context"
	"strings"

	"project-recommender/internal/database"
	"project-recommender/internal/domain/skill"
)

type SkillRepository interface {
	GetAllSkills(ctx context.Context, category string) ([]skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

// GetAllSkills lists the catalogue. A non-empty category narrows the result
// case-insensitively and orders by name; otherwise rows are grouped by category.
func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context, category string) ([]skill.Skill, error) {
	category = strings.TrimSpace(category)

	var (
		rows database.Rows
		err  error
	)
	if category != "" {
		rows, err = r.db.Query(ctx,
			`SELECT id, name, category, description, created_at
			 FROM skills
			 WHERE UPPER(category) = UPPER($1)
			 ORDER BY name ASC`,
			category,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT id, name, category, description, created_at
			 FROM skills
			 ORDER BY category ASC, name ASC`,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
