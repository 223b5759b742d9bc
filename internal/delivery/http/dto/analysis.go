package dto

import (
	"resume-match/internal/domain/feedback"
	"resume-match/internal/sections"
)

type AnalyzeRequest struct {
	ResumeText     string         `json:"resume_text"`
	JobDescription string         `json:"job_description"`
	ResumeData     map[string]any `json:"resume_data"`
}

// AnalyzeResponse is the analyze contract. Sub-scores are integer
// percentages on the wire; the skill-list fields appear only when the
// result is framed as a mismatch.
type AnalyzeResponse struct {
	OverallScore       int                          `json:"overall_score"`
	SkillMatch         int                          `json:"skill_match"`
	ExperienceMatch    int                          `json:"experience_match"`
	KeywordDensity     int                          `json:"keyword_density"`
	SemanticSimilarity int                          `json:"semantic_similarity"`
	IsCompleteMismatch bool                         `json:"is_complete_mismatch"`
	MismatchMessage    string                       `json:"mismatch_message,omitempty"`
	RequiredSkills     []string                     `json:"required_skills,omitempty"`
	YourSkills         []string                     `json:"your_skills,omitempty"`
	MissingSkills      []string                     `json:"missing_skills,omitempty"`
	MatchingSkills     []string                     `json:"matching_skills,omitempty"`
	Strengths          []string                     `json:"strengths"`
	Improvements       []string                     `json:"improvements"`
	SuggestedProjects  []feedback.ProjectSuggestion `json:"suggested_projects"`
	ResumeSections     sections.ResumeSections      `json:"resume_sections"`
	JobRequirements    sections.JobRequirements     `json:"job_requirements"`
}
