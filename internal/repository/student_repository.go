package repository

import (
	"context"
	"strings"

	"project-recommender/internal/database"
	"project-recommender/internal/domain/skill"
	"project-recommender/internal/domain/student"

	"github.com/google/uuid"
)

type PostgresStudentRepository struct {
	db database.DB
}

func NewPostgresStudentRepository(db database.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

// CreateStudent inserts the student and its initial skills in one transaction.
func (r *PostgresStudentRepository) CreateStudent(ctx context.Context, s student.Student, skills []skill.StudentSkill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO students (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.Email, s.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return student.ErrEmailTaken
		}
		return err
	}

	if err := insertStudentSkills(ctx, tx, s.ID, skills); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresStudentRepository) GetStudentByID(ctx context.Context, id uuid.UUID) (student.Student, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at FROM students WHERE id = $1`,
		id,
	)
	return scanStudent(row)
}

func (r *PostgresStudentRepository) GetStudentByEmail(ctx context.Context, email string) (student.Student, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at FROM students WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)),
	)
	return scanStudent(row)
}

func (r *PostgresStudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`,
		strings.ToLower(strings.TrimSpace(email)),
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresStudentRepository) UpdateStudent(ctx context.Context, s student.Student) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE students SET name = $1, email = $2, updated_at = now() WHERE id = $3`,
		s.Name, s.Email, s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return student.ErrEmailTaken
		}
		return err
	}
	if affected == 0 {
		return student.ErrNotFound
	}
	return nil
}

func scanStudent(row database.Row) (student.Student, error) {
	var s student.Student
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if isNoRows(err) {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, err
	}
	return s, nil
}
