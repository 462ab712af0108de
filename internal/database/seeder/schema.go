package seeder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"project-recommender/internal/database"
)

// seededColumns lists the columns each seeder writes.
var seededColumns = map[string][]string{
	"skills":         {"id", "name", "category", "description"},
	"projects":       {"id", "title", "description", "difficulty_level", "category", "created_by"},
	"project_skills": {"project_id", "skill_id", "required_proficiency_level", "is_mandatory"},
}

// requireSchema fails when a seeded table or column is absent, which means
// migrations have not been applied.
func requireSchema(ctx context.Context, db database.Executor, tables ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	rows, err := db.Query(ctx,
		`SELECT table_name, column_name
		 FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = ANY($1)`,
		tables,
	)
	if err != nil {
		return fmt.Errorf("inspect schema: %w", err)
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var table, column string
		if err := rows.Scan(&table, &column); err != nil {
			return err
		}
		existing[table+"."+column] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, table := range tables {
		for _, col := range seededColumns[table] {
			if _, ok := existing[table+"."+col]; !ok {
				missing = append(missing, table+"."+col)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("schema mismatch, run migrate first: missing %s", strings.Join(missing, ", "))
	}
	return nil
}
