package seeder

import (
	"context"
	"fmt"

	"project-recommender/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

type seedSkill struct {
	Name        string
	Category    string
	Description string
}

var defaultSkills = []seedSkill{
	{Name: "Python", Category: "Programming", Description: "General purpose scripting and data work"},
	{Name: "JavaScript", Category: "Programming", Description: "Browser and Node.js development"},
	{Name: "Java", Category: "Programming", Description: "JVM application development"},
	{Name: "Go", Category: "Programming", Description: "Backend services and tooling"},
	{Name: "SQL", Category: "Database", Description: "Relational querying and schema design"},
	{Name: "MongoDB", Category: "Database", Description: "Document database modelling"},
	{Name: "HTML/CSS", Category: "Web", Description: "Page structure and styling"},
	{Name: "React", Category: "Web", Description: "Component based user interfaces"},
	{Name: "Machine Learning", Category: "Data Science", Description: "Supervised and unsupervised models"},
	{Name: "Data Analysis", Category: "Data Science", Description: "Exploratory analysis and visualisation"},
	{Name: "Git", Category: "Tools", Description: "Version control workflows"},
	{Name: "Docker", Category: "DevOps", Description: "Container images and local environments"},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireSchema(ctx, db, "skills"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range defaultSkills {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category, description) VALUES (gen_random_uuid(), $1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
			it.Description,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
