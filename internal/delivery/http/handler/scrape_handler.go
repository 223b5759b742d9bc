package handler

import (
	"context"
	"strings"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/domain/skill"
	"resume-match/internal/sections"

	"github.com/gofiber/fiber/v3"
)

// JobPageScraper is the collaborator that turns a job URL into plain
// description text.
type JobPageScraper interface {
	Scrape(ctx context.Context, url string) (string, error)
}

type ScrapeHandler struct {
	scraper JobPageScraper
}

func NewScrapeHandler(scraper JobPageScraper) *ScrapeHandler {
	return &ScrapeHandler{scraper: scraper}
}

func (h *ScrapeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Post("/scrape", h.Scrape)
}

func (h *ScrapeHandler) Scrape(c fiber.Ctx) error {
	var req dto.ScrapeJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.URL) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing job url", nil, nil)
	}

	text, err := h.scraper.Scrape(c.Context(), req.URL)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to scrape job description: "+err.Error(), nil, err)
	}

	reqs := sections.ExtractJobRequirements(text)
	reqs.RequiredSkills = skill.Extract(text).Names()

	return c.Status(fiber.StatusOK).JSON(dto.ScrapeJobResponse{
		URL:          req.URL,
		Description:  text,
		Requirements: reqs,
	})
}
