package usecase

import (
	"context"

	"resume-match/internal/domain/recommend"
	"resume-match/internal/domain/skill"
)

type RecommendationParams struct {
	ResumeText string
	ResumeData map[string]any
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, params RecommendationParams) ([]recommend.JobPosting, error)
}

type Recommendation struct {
	gen *recommend.Generator
}

func NewRecommendationUsecase(gen *recommend.Generator) *Recommendation {
	if gen == nil {
		gen = recommend.NewGenerator(nil)
	}
	return &Recommendation{gen: gen}
}

// GetRecommendations synthesizes ranked postings from the skills found
// in the resume text. An empty or unmatched skill profile falls back to
// the generic fullstack category inside the generator.
func (u *Recommendation) GetRecommendations(_ context.Context, params RecommendationParams) ([]recommend.JobPosting, error) {
	resumeSkills := skill.Extract(params.ResumeText)
	return u.gen.Generate(resumeSkills), nil
}
