package repository

import (
	"context"

	"project-recommender/internal/database"
	"project-recommender/internal/domain/skill"

	"github.com/google/uuid"
)

type ProjectSkillRepository interface {
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]skill.ProjectSkill, error)
	FindByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID][]skill.ProjectSkill, error)
}

type PostgresProjectSkillRepository struct {
	db database.DB
}

func NewPostgresProjectSkillRepository(db database.DB) *PostgresProjectSkillRepository {
	return &PostgresProjectSkillRepository{db: db}
}

func (r *PostgresProjectSkillRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]skill.ProjectSkill, error) {
	m, err := r.FindByProjectIDs(ctx, []uuid.UUID{projectID})
	if err != nil {
		return nil, err
	}
	out := m[projectID]
	if out == nil {
		out = []skill.ProjectSkill{}
	}
	return out, nil
}

// FindByProjectIDs loads requirements for many projects in one round trip.
// Requirement order within a project is by skill name.
func (r *PostgresProjectSkillRepository) FindByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID][]skill.ProjectSkill, error) {
	out := make(map[uuid.UUID][]skill.ProjectSkill, len(projectIDs))
	if len(projectIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT ps.project_id, ps.skill_id, s.name, s.category, ps.required_proficiency_level, ps.is_mandatory
		 FROM project_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.project_id = ANY($1)
		 ORDER BY ps.project_id, s.name ASC`,
		projectIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			projectID uuid.UUID
			it        skill.ProjectSkill
			level     string
		)
		if err := rows.Scan(&projectID, &it.SkillID, &it.SkillName, &it.SkillCategory, &level, &it.IsMandatory); err != nil {
			return nil, err
		}
		it.RequiredLevel = skill.ParseProficiencyLevel(level)
		out[projectID] = append(out[projectID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
