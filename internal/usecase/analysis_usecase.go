package usecase

import (
	"context"
	"log"

	"resume-match/internal/domain/feedback"
	"resume-match/internal/domain/matching"
	"resume-match/internal/domain/skill"
	"resume-match/internal/infrastructure/cache"
	"resume-match/internal/sections"
)

const (
	mismatchMessage = "This position is not suitable for your current skill set."
	lowScoreMessage = "Your skills don't align well with this position."
)

type AnalyzeParams struct {
	ResumeText     string
	JobDescription string
	ResumeData     map[string]any
}

// AnalysisResult carries everything the analyze endpoint exposes. Skill
// slices beyond Strengths/Improvements/Projects are populated only when
// the result is framed as a mismatch.
type AnalysisResult struct {
	Scores            matching.Scores
	Mismatch          bool
	MismatchMessage   string
	RequiredSkills    []string
	YourSkills        []string
	MissingSkills     []string
	MatchingSkills    []string
	Strengths         []string
	Improvements      []string
	SuggestedProjects []feedback.ProjectSuggestion
	ResumeSections    sections.ResumeSections
	JobRequirements   sections.JobRequirements
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, params AnalyzeParams) (AnalysisResult, error)
}

type Analysis struct {
	sim        matching.SimilarityScorer
	cache      *cache.Redis
	thresholds matching.Thresholds
	log        *log.Logger
}

// NewAnalysisUsecase wires the scoring pipeline. sim may be nil (Jaccard
// is used); cache may be nil (no caching).
func NewAnalysisUsecase(sim matching.SimilarityScorer, resultCache *cache.Redis, th matching.Thresholds, logger *log.Logger) *Analysis {
	if sim == nil {
		sim = matching.JaccardScorer{}
	}
	if th.Mismatch <= 0 && th.LowScore <= 0 {
		th = matching.DefaultThresholds()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Analysis{sim: sim, cache: resultCache, thresholds: th, log: logger}
}

// Analyze runs extraction, scoring and feedback generation on one
// resume/job pair. Empty inputs degrade to zero scores and empty sets,
// never errors.
func (u *Analysis) Analyze(ctx context.Context, params AnalyzeParams) (AnalysisResult, error) {
	key := cache.AnalysisKey(params.ResumeText, params.JobDescription)
	var cached AnalysisResult
	if ok, _ := u.cache.GetJSON(ctx, key, &cached); ok {
		return cached, nil
	}

	resumeSkills := skill.Extract(params.ResumeText)
	jobSkills := skill.Extract(params.JobDescription)

	scores := matching.Calculate(ctx, params.ResumeText, params.JobDescription, resumeSkills, jobSkills, u.sim, u.thresholds)

	matchingSkills := resumeSkills.Intersect(jobSkills)
	missingSkills := jobSkills.Subtract(resumeSkills)

	jobReqs := sections.ExtractJobRequirements(params.JobDescription)
	jobReqs.RequiredSkills = jobSkills.Names()

	res := AnalysisResult{
		Scores:            scores,
		Strengths:         feedback.Strengths(resumeSkills, jobSkills, matchingSkills),
		Improvements:      feedback.Improvements(resumeSkills, missingSkills),
		SuggestedProjects: feedback.Projects(jobSkills, resumeSkills),
		ResumeSections:    sections.SplitResume(params.ResumeText),
		JobRequirements:   jobReqs,
	}

	if scores.CompleteMismatch || scores.IsLowScore(u.thresholds) {
		res.Mismatch = true
		if scores.CompleteMismatch {
			res.MismatchMessage = mismatchMessage
		} else {
			res.MismatchMessage = lowScoreMessage
		}
		res.RequiredSkills = jobSkills.Names()
		res.YourSkills = resumeSkills.Names()
		res.MissingSkills = missingSkills.Names()
		res.MatchingSkills = matchingSkills.Names()
	}

	if err := u.cache.SetJSON(ctx, key, res, 0); err != nil {
		u.log.Printf("analysis cache write failed: %v", err)
	}

	return res, nil
}
