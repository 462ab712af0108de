package main

import (
	"project-recommender/internal/app"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(func(c *app.Container) error {
			return c.Migrate(cmd.Context())
		})
	},
}

var seedWithMigrations bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the skills catalogue and sample projects and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(func(c *app.Container) error {
			if seedWithMigrations {
				if err := c.Migrate(cmd.Context()); err != nil {
					return err
				}
			}
			return c.Seed(cmd.Context())
		})
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedWithMigrations, "migrate", true, "apply migrations before seeding")
}

func withDatabase(fn func(c *app.Container) error) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync()

	c, err := app.NewDatabaseContainer(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	return fn(c)
}
