package handler

import (
	"errors"
	"io"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/domain/skill"
	"resume-match/internal/extract"
	"resume-match/internal/sections"

	"github.com/gofiber/fiber/v3"
)

type DocumentHandler struct{}

func NewDocumentHandler() *DocumentHandler {
	return &DocumentHandler{}
}

func (h *DocumentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/documents")
	grp.Post("/process", h.Process)
}

// Process accepts a multipart resume upload, extracts its text and
// returns the parsed structure the analyzer consumes.
func (h *DocumentHandler) Process(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file upload", nil, err)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), nil, err)
	}

	text, err := extract.DocumentText(fh.Filename, data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported file format", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), nil, err)
	}

	out := dto.ProcessDocumentResponse{
		Filename: fh.Filename,
		Text:     text,
		ParsedData: dto.ParsedDocument{
			Text:            text,
			Sections:        sections.SplitResume(text),
			Skills:          skill.Extract(text).Names(),
			ExperienceYears: sections.ExperienceYears(text),
			Education:       sections.Education(text),
		},
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
