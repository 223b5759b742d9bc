package dto

import "resume-match/internal/domain/recommend"

type RecommendationRequest struct {
	ResumeText string         `json:"resumeText"`
	ResumeData map[string]any `json:"resumeData"`
}

type RecommendationResponse struct {
	Recommendations []recommend.JobPosting `json:"recommendations"`
}
