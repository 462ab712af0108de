package v1

import (
	"project-recommender/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterCatalog(r fiber.Router, skills *handler.SkillHandler, projects *handler.ProjectHandler, authenticate fiber.Handler) {
	if r == nil {
		return
	}

	if skills != nil {
		skills.RegisterRoutes(r)
	}
	if projects == nil {
		return
	}
	if authenticate == nil {
		projects.RegisterRoutes(r)
		return
	}
	projects.RegisterRoutes(r, authenticate)
}
