package repository

import (
	"context"
	"fmt"

	"project-recommender/internal/database"
	"project-recommender/internal/domain/skill"
	"project-recommender/internal/domain/student"

	"github.com/google/uuid"
)

type StudentSkillRepository interface {
	FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]skill.StudentSkill, error)
	ReplaceForStudent(ctx context.Context, studentID uuid.UUID, skills []skill.StudentSkill) error
}

type PostgresStudentSkillRepository struct {
	db database.DB
}

func NewPostgresStudentSkillRepository(db database.DB) *PostgresStudentSkillRepository {
	return &PostgresStudentSkillRepository{db: db}
}

func (r *PostgresStudentSkillRepository) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]skill.StudentSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ss.skill_id, s.name, ss.proficiency_level, ss.years_of_experience
		 FROM student_skills ss
		 JOIN skills s ON s.id = ss.skill_id
		 WHERE ss.student_id = $1
		 ORDER BY s.name ASC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.StudentSkill, 0)
	for rows.Next() {
		var (
			it    skill.StudentSkill
			level string
		)
		if err := rows.Scan(&it.SkillID, &it.SkillName, &level, &it.YearsExperience); err != nil {
			return nil, err
		}
		it.ProficiencyLevel = skill.ParseProficiencyLevel(level)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceForStudent swaps the full skill set of a student inside one transaction.
func (r *PostgresStudentSkillRepository) ReplaceForStudent(ctx context.Context, studentID uuid.UUID, skills []skill.StudentSkill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM student_skills WHERE student_id = $1`, studentID); err != nil {
		return err
	}

	if err := insertStudentSkills(ctx, tx, studentID, skills); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertStudentSkills(ctx context.Context, tx database.Executor, studentID uuid.UUID, skills []skill.StudentSkill) error {
	for _, s := range skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO student_skills (student_id, skill_id, proficiency_level, years_of_experience)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (student_id, skill_id)
			 DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level, years_of_experience = EXCLUDED.years_of_experience`,
			studentID, s.SkillID, s.ProficiencyLevel.String(), s.YearsExperience,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %s", student.ErrUnknownSkill, s.SkillID)
			}
			return err
		}
	}
	return nil
}
