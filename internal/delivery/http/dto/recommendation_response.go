package dto

import (
	"project-recommender/internal/usecase"

	"github.com/google/uuid"
)

type RecommendationItemResponse struct {
	ProjectResponse
	MatchScore float64 `json:"match_score"`
}

type RecommendationResponse struct {
	StudentID       uuid.UUID                    `json:"student_id"`
	Message         string                       `json:"message,omitempty"`
	Recommendations []RecommendationItemResponse `json:"recommendations"`
}

func NewRecommendationResponse(out usecase.RecommendationOutput) RecommendationResponse {
	items := make([]RecommendationItemResponse, 0, len(out.Recommendations))
	for _, r := range out.Recommendations {
		items = append(items, RecommendationItemResponse{
			ProjectResponse: NewProjectResponse(r.Project, r.Skills),
			MatchScore:      r.MatchScore,
		})
	}
	return RecommendationResponse{
		StudentID:       out.StudentID,
		Message:         out.Message,
		Recommendations: items,
	}
}
