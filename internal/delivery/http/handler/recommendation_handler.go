package handler

import (
	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/domain/recommend"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/job-recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	recs, err := h.uc.GetRecommendations(c.Context(), usecase.RecommendationParams{
		ResumeText: req.ResumeText,
		ResumeData: req.ResumeData,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Error generating job recommendations: "+err.Error(), nil, err)
	}
	if recs == nil {
		recs = []recommend.JobPosting{}
	}

	return c.Status(fiber.StatusOK).JSON(dto.RecommendationResponse{Recommendations: recs})
}
