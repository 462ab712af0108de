package handler

import (
	"project-recommender/internal/delivery/http/dto"
	"project-recommender/internal/delivery/http/middleware"
	"project-recommender/internal/pkg/response"
	"project-recommender/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type StudentHandler struct {
	uc usecase.StudentUsecase
}

type studentSkillRequest struct {
	SkillID           uuid.UUID `json:"skill_id"`
	ProficiencyLevel  string    `json:"proficiency_level"`
	YearsOfExperience int       `json:"years_of_experience"`
}

type studentRequest struct {
	Name   string                `json:"name"`
	Email  string                `json:"email"`
	Skills []studentSkillRequest `json:"skills"`
}

func NewStudentHandler(uc usecase.StudentUsecase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

// RegisterRoutes mounts the student endpoints. Reads and updates of a single
// student are wrapped in protect, which must authenticate the caller and
// check ownership of :id.
func (h *StudentHandler) RegisterRoutes(r fiber.Router, protect ...fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/students")
	grp.Post("/", h.Create)
	get, getChain := guarded(h.Get, protect)
	grp.Get("/:id", get, getChain...)
	put, putChain := guarded(h.Update, protect)
	grp.Put("/:id", put, putChain...)
}

func (h *StudentHandler) Create(c fiber.Ctx) error {
	var req studentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	id, err := h.uc.CreateStudent(c.Context(), usecase.CreateStudentInput{
		Name:   req.Name,
		Email:  req.Email,
		Skills: toStudentSkillInputs(req.Skills),
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Created(c, "Student created successfully", dto.StudentCreatedResponse{StudentID: id})
}

func (h *StudentHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "student")
	if err != nil {
		return err
	}

	prof, err := h.uc.GetProfile(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStudentProfileResponse(prof))
}

func (h *StudentHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "student")
	if err != nil {
		return err
	}

	var req studentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	prof, err := h.uc.UpdateStudent(c.Context(), id, usecase.UpdateStudentInput{
		Name:   req.Name,
		Email:  req.Email,
		Skills: toStudentSkillInputs(req.Skills),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Student updated successfully", dto.NewStudentProfileResponse(prof))
}

func toStudentSkillInputs(in []studentSkillRequest) []usecase.StudentSkillInput {
	out := make([]usecase.StudentSkillInput, 0, len(in))
	for _, s := range in {
		out = append(out, usecase.StudentSkillInput{
			SkillID:          s.SkillID,
			ProficiencyLevel: s.ProficiencyLevel,
			YearsExperience:  s.YearsOfExperience,
		})
	}
	return out
}
