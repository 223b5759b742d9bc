package handler

import (
	"math"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/analyze", h.Analyze)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Analyze(c.Context(), usecase.AnalyzeParams{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		ResumeData:     req.ResumeData,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), nil, err)
	}

	out := dto.AnalyzeResponse{
		OverallScore:       res.Scores.OverallScore,
		SkillMatch:         pct(res.Scores.SkillMatch),
		ExperienceMatch:    pct(res.Scores.ExperienceMatch),
		KeywordDensity:     pct(res.Scores.KeywordDensity),
		SemanticSimilarity: pct(res.Scores.SemanticSimilarity),
		IsCompleteMismatch: res.Scores.CompleteMismatch,
		Strengths:          res.Strengths,
		Improvements:       res.Improvements,
		SuggestedProjects:  res.SuggestedProjects,
		ResumeSections:     res.ResumeSections,
		JobRequirements:    res.JobRequirements,
	}
	if res.Mismatch {
		out.MismatchMessage = res.MismatchMessage
		out.RequiredSkills = res.RequiredSkills
		out.YourSkills = res.YourSkills
		out.MissingSkills = res.MissingSkills
		out.MatchingSkills = res.MatchingSkills
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func pct(v float64) int {
	p := int(math.Round(v * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
