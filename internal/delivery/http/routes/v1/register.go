package v1

import (
	"project-recommender/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers bundles the v1 handlers. Authenticate must reject requests without
// a valid access token; a nil Authenticate leaves the protected routes open.
type Handlers struct {
	Auth            *handler.AuthHandler
	Students        *handler.StudentHandler
	Skills          *handler.SkillHandler
	Projects        *handler.ProjectHandler
	Recommendations *handler.RecommendationHandler
	Authenticate    fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	RegisterStudents(r, h.Students, h.Recommendations, h.Authenticate)
	RegisterCatalog(r, h.Skills, h.Projects, h.Authenticate)
}
