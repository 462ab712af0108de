package seeder

import (
	"context"
	"errors"
	"fmt"

	"project-recommender/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

type seedRequirement struct {
	Skill     string
	Level     string
	Mandatory bool
}

type seedProject struct {
	Title       string
	Description string
	Difficulty  string
	Category    string
	Skills      []seedRequirement
}

var defaultProjects = []seedProject{
	{
		Title:       "Personal Portfolio Website",
		Description: "Build a responsive site that showcases your work.",
		Difficulty:  "Beginner",
		Category:    "Web Development",
		Skills: []seedRequirement{
			{Skill: "HTML/CSS", Level: "Beginner", Mandatory: true},
			{Skill: "JavaScript", Level: "Beginner", Mandatory: false},
			{Skill: "Git", Level: "Beginner", Mandatory: false},
		},
	},
	{
		Title:       "Task Tracker SPA",
		Description: "Single page app with drag and drop boards backed by a REST API.",
		Difficulty:  "Intermediate",
		Category:    "Web Development",
		Skills: []seedRequirement{
			{Skill: "React", Level: "Intermediate", Mandatory: true},
			{Skill: "JavaScript", Level: "Intermediate", Mandatory: true},
			{Skill: "MongoDB", Level: "Beginner", Mandatory: false},
		},
	},
	{
		Title:       "Student Grade Predictor",
		Description: "Train a model that predicts final grades from coursework data.",
		Difficulty:  "Advanced",
		Category:    "Data Science",
		Skills: []seedRequirement{
			{Skill: "Python", Level: "Intermediate", Mandatory: true},
			{Skill: "Machine Learning", Level: "Advanced", Mandatory: true},
			{Skill: "Data Analysis", Level: "Intermediate", Mandatory: false},
		},
	},
	{
		Title:       "Library Management API",
		Description: "REST service for books, members and loans with a relational schema.",
		Difficulty:  "Intermediate",
		Category:    "Backend",
		Skills: []seedRequirement{
			{Skill: "Go", Level: "Intermediate", Mandatory: true},
			{Skill: "SQL", Level: "Intermediate", Mandatory: true},
			{Skill: "Docker", Level: "Beginner", Mandatory: false},
		},
	},
	{
		Title:       "Open Ideas Board",
		Description: "Free-form project with no fixed stack.",
		Difficulty:  "Beginner",
		Category:    "General",
	},
}

func (ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireSchema(ctx, db, "projects", "project_skills"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range defaultProjects {
		var projectID uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM projects WHERE UPPER(title) = UPPER($1)`, p.Title).Scan(&projectID)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("lookup project %q: %w", p.Title, err)
		}

		projectID = uuid.New()
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO projects (id, title, description, difficulty_level, category, created_by)
			 VALUES ($1, $2, $3, $4, $5, 'Seeder')`,
			projectID, p.Title, p.Description, p.Difficulty, p.Category,
		); err != nil {
			return fmt.Errorf("insert project %q: %w", p.Title, err)
		}

		for _, s := range p.Skills {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO project_skills (project_id, skill_id, required_proficiency_level, is_mandatory)
				 SELECT $1, id, $3, $4 FROM skills WHERE name = $2
				 ON CONFLICT (project_id, skill_id) DO NOTHING`,
				projectID, s.Skill, s.Level, s.Mandatory,
			); err != nil {
				return fmt.Errorf("insert requirement %q for %q: %w", s.Skill, p.Title, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
