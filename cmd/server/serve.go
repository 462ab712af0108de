package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-recommender/internal/app"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadRuntime()
		if err != nil {
			return err
		}
		defer log.Sync()

		addr, err := app.ListenAddr(cfg.App.HTTPPort)
		if err != nil {
			return fmt.Errorf("invalid HTTP port: %w", err)
		}

		bootstrap, cleanup, err := app.Bootstrap(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to bootstrap app: %w", err)
		}
		defer func() {
			if err := cleanup(); err != nil {
				log.Error("cleanup failed", "error", err)
			}
		}()

		errCh := make(chan error, 1)
		go func() {
			log.Info("http server listening", "addr", addr, "env", cfg.App.Environment)
			errCh <- bootstrap.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
		case sig := <-sigCh:
			log.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
				log.Error("shutdown failed", "error", err)
			}
		}
		return nil
	},
}
