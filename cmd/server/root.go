package main

import (
	"fmt"

	"project-recommender/internal/config"
	"project-recommender/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const appName = "project-recommender"

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "project-recommender serves the student project recommendation API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute runs the command tree; serve is the default command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "error:", err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func loadRuntime() (config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.App.Environment, cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, log.With("app", cfg.App.AppName), nil
}
