package handler

import (
	"errors"
	"strings"

	"project-recommender/internal/delivery/http/middleware"
	"project-recommender/internal/pkg/response"
	"project-recommender/internal/usecase"
	ucauth "project-recommender/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var taken *usecase.TitleTakenError
	switch {
	case errors.As(err, &taken):
		return middleware.NewAppError(fiber.StatusConflict, "A project with this title already exists", fiber.Map{"project_id": taken.ExistingID}, err)
	case errors.Is(err, usecase.ErrProjectTitleTaken):
		return middleware.NewAppError(fiber.StatusConflict, "A project with this title already exists", nil, err)

	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered), errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered. Please login instead.", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrPasswordTooShort):
		return middleware.NewAppError(fiber.StatusBadRequest, "Password must be at least 6 characters long", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Proficiency level must be Beginner, Intermediate or Advanced", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown skill", nil, err)

	case errors.Is(err, usecase.ErrTooManyLoginAttempts):
		return middleware.NewAppError(fiber.StatusTooManyRequests, "Too many failed login attempts. Please try again later.", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)

	case errors.Is(err, usecase.ErrStudentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Student not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)

	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseIDParam(c fiber.Ctx, name, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+label+" id", nil, err)
	}
	return id, nil
}

// guarded builds a route chain that runs guards before h.
func guarded(h fiber.Handler, guards []fiber.Handler) (any, []any) {
	if len(guards) == 0 {
		return h, nil
	}
	rest := make([]any, 0, len(guards))
	for _, g := range guards[1:] {
		rest = append(rest, g)
	}
	rest = append(rest, h)
	return guards[0], rest
}
