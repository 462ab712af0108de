package handler

import (
	"context"
	"time"

	"project-recommender/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports database reachability. Redis is informational only
// because the service runs without it.
type HealthHandler struct {
	db    Pinger
	redis Pinger
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis,omitempty"`
}

func NewHealthHandler(db Pinger, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	res := healthResponse{Status: "healthy", Database: "connected"}
	if h.redis != nil {
		res.Redis = "connected"
		if err := h.redis.Ping(ctx); err != nil {
			res.Redis = "unavailable"
		}
	}

	if h.db == nil || h.db.Ping(ctx) != nil {
		res.Status = "unhealthy"
		res.Database = "disconnected"
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
