package v1

import (
	"project-recommender/internal/delivery/http/handler"
	"project-recommender/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// RegisterStudents mounts routes scoped to a single student. Those routes
// only serve the student named in the path.
func RegisterStudents(r fiber.Router, students *handler.StudentHandler, recs *handler.RecommendationHandler, authenticate fiber.Handler) {
	if r == nil {
		return
	}

	if students != nil {
		students.RegisterRoutes(r, ownerOnly(authenticate, "id")...)
	}
	if recs != nil {
		recs.RegisterRoutes(r, ownerOnly(authenticate, "studentId")...)
	}
}

func ownerOnly(authenticate fiber.Handler, param string) []fiber.Handler {
	if authenticate == nil {
		return nil
	}
	return []fiber.Handler{authenticate, middleware.RequireSelf(param)}
}
