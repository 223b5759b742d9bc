package dto

import "resume-match/internal/sections"

type ParsedDocument struct {
	Text            string                  `json:"text"`
	Sections        sections.ResumeSections `json:"sections"`
	Skills          []string                `json:"skills"`
	ExperienceYears int                     `json:"experience_years"`
	Education       []string                `json:"education"`
}

type ProcessDocumentResponse struct {
	Filename   string         `json:"filename"`
	Text       string         `json:"text"`
	ParsedData ParsedDocument `json:"parsed_data"`
}

type ScrapeJobRequest struct {
	URL string `json:"url"`
}

type ScrapeJobResponse struct {
	URL          string                   `json:"url"`
	Description  string                   `json:"description"`
	Requirements sections.JobRequirements `json:"requirements"`
}
