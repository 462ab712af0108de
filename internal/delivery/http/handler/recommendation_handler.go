package handler

import (
	"project-recommender/internal/delivery/http/dto"
	"project-recommender/internal/pkg/response"
	"project-recommender/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router, protect ...fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/recommendations")
	get, chain := guarded(h.Get, protect)
	grp.Get("/:studentId", get, chain...)
}

func (h *RecommendationHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "studentId", "student")
	if err != nil {
		return err
	}

	out, err := h.uc.ComputeRecommendations(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := response.MessageOK
	if out.Message != "" {
		msg = out.Message
	}
	return response.Success(c, fiber.StatusOK, msg, dto.NewRecommendationResponse(out))
}
