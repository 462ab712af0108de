package handler

import (
	"project-recommender/internal/delivery/http/dto"
	"project-recommender/internal/delivery/http/middleware"
	"project-recommender/internal/domain/project"
	"project-recommender/internal/pkg/response"
	"project-recommender/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type projectSkillRequest struct {
	SkillID                  uuid.UUID `json:"skill_id"`
	RequiredProficiencyLevel string    `json:"required_proficiency_level"`
	IsMandatory              *bool     `json:"is_mandatory"`
}

type createProjectRequest struct {
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	DifficultyLevel string                `json:"difficulty_level"`
	Category        string                `json:"category"`
	CreatedBy       string                `json:"created_by"`
	Skills          []projectSkillRequest `json:"skills"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// RegisterRoutes mounts project endpoints. Listing and reading are public;
// creation runs behind protect.
func (h *ProjectHandler) RegisterRoutes(r fiber.Router, protect ...fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	create, chain := guarded(h.Create, protect)
	grp.Post("/", create, chain...)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProjects(c.Context(), project.ListFilter{
		Difficulty: c.Query("difficulty"),
		Category:   c.Query("category"),
		Search:     c.Query("search"),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponses(items))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "project")
	if err != nil {
		return err
	}

	p, err := h.uc.GetProject(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(p.Project, p.Skills))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req createProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	skills := make([]usecase.ProjectSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, usecase.ProjectSkillInput{
			SkillID:       s.SkillID,
			RequiredLevel: s.RequiredProficiencyLevel,
			IsMandatory:   s.IsMandatory,
		})
	}

	id, err := h.uc.CreateProject(c.Context(), usecase.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.DifficultyLevel,
		Category:    req.Category,
		CreatedBy:   req.CreatedBy,
		Skills:      skills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Created(c, "Project created successfully", dto.ProjectCreatedResponse{ProjectID: id})
}
