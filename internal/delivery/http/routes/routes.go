package routes

import (
	"project-recommender/internal/delivery/http/handler"
	v1 "project-recommender/internal/delivery/http/routes/v1"
	"project-recommender/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	feed   *ws.Handler
	v1     v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, feed *ws.Handler, api v1.Handlers) *Registry {
	return &Registry{health: health, feed: feed, v1: api}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerFeed(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerFeed(app *fiber.App) {
	if r.feed == nil {
		return
	}
	r.feed.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
