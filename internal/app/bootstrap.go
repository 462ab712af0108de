package app

import (
	"context"
	"fmt"
	"strings"

	"project-recommender/internal/config"
	"project-recommender/internal/delivery/http/handler"
	"project-recommender/internal/delivery/http/middleware"
	"project-recommender/internal/delivery/http/routes"
	v1 "project-recommender/internal/delivery/http/routes/v1"
	"project-recommender/internal/pkg/logger"
	"project-recommender/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Log)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap wires the container, starts the live feed hub and builds the HTTP
// app. The returned cleanup stops the hub and releases connections.
func Bootstrap(cfg config.Config, log *logger.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	app := New(c)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *logger.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(cors.New())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	reg := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Redis),
		ws.NewHandler(c.Hub, c.Log),
		v1.Handlers{
			Auth:            handler.NewAuthHandler(c.Auth),
			Students:        handler.NewStudentHandler(c.Students),
			Skills:          handler.NewSkillHandler(c.Skills),
			Projects:        handler.NewProjectHandler(c.Projects),
			Recommendations: handler.NewRecommendationHandler(c.Recommendations),
			Authenticate:    middleware.NewAuthMiddleware(c.JWT).Middleware(),
		},
	)
	reg.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
