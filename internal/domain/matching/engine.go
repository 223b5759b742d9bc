package matching

import (
	"context"
	"math"
	"strings"

	"resume-match/internal/domain/skill"
)

// Default component weights for the overall score.
const (
	WeightSkillMatch         = 0.35
	WeightExperienceMatch    = 0.25
	WeightKeywordDensity     = 0.20
	WeightSemanticSimilarity = 0.20
)

// Hardcoded cutoffs carried over from the original service. They have no
// stated business derivation; treat them as tunables, not truths.
const (
	DefaultMismatchThreshold = 0.10
	DefaultLowScoreThreshold = 50
)

// Scores holds the four sub-scores in [0,1] plus the derived fields.
type Scores struct {
	SkillMatch         float64
	ExperienceMatch    float64
	KeywordDensity     float64
	SemanticSimilarity float64
	OverallScore       int
	CompleteMismatch   bool
}

// SimilarityScorer computes a semantic similarity in [0,1] between two
// texts. Implementations must degrade instead of failing: any internal
// error yields the Jaccard word-set fallback.
type SimilarityScorer interface {
	Score(ctx context.Context, a, b string) float64
}

// Thresholds parametrize the mismatch classification.
type Thresholds struct {
	Mismatch float64
	LowScore int
}

func DefaultThresholds() Thresholds {
	return Thresholds{Mismatch: DefaultMismatchThreshold, LowScore: DefaultLowScoreThreshold}
}

// Calculate combines the four sub-scores for a resume/job pair. It is a
// pure function of its inputs; sim supplies the semantic component.
func Calculate(ctx context.Context, resumeText, jobText string, resumeSkills, jobSkills skill.Set, sim SimilarityScorer, th Thresholds) Scores {
	s := Scores{
		SkillMatch:      SkillMatch(resumeSkills, jobSkills),
		ExperienceMatch: ExperienceMatch(resumeText, jobText),
		KeywordDensity:  KeywordDensity(resumeText, jobText),
	}
	if sim != nil {
		s.SemanticSimilarity = sim.Score(ctx, resumeText, jobText)
	} else {
		s.SemanticSimilarity = JaccardSimilarity(resumeText, jobText)
	}

	weighted := s.SkillMatch*WeightSkillMatch +
		s.ExperienceMatch*WeightExperienceMatch +
		s.KeywordDensity*WeightKeywordDensity +
		s.SemanticSimilarity*WeightSemanticSimilarity
	s.OverallScore = clampScore(int(math.Round(weighted * 100)))

	mismatch := th.Mismatch
	if mismatch <= 0 {
		mismatch = DefaultMismatchThreshold
	}
	s.CompleteMismatch = s.SkillMatch < mismatch && s.ExperienceMatch < mismatch

	return s
}

// IsLowScore reports whether the overall score falls below the low-score
// framing cutoff. It changes narrative only, never the numbers.
func (s Scores) IsLowScore(th Thresholds) bool {
	low := th.LowScore
	if low <= 0 {
		low = DefaultLowScoreThreshold
	}
	return s.OverallScore < low
}

// SkillMatch is the fraction of required job skills the resume covers.
func SkillMatch(resumeSkills, jobSkills skill.Set) float64 {
	if jobSkills.Len() == 0 {
		return 0
	}
	return float64(resumeSkills.Intersect(jobSkills).Len()) / float64(jobSkills.Len())
}

// KeywordDensity is the fraction of resume words that also appear in the
// job description's word set, capped at 1.
func KeywordDensity(resumeText, jobText string) float64 {
	resumeWords := strings.Fields(strings.ToLower(resumeText))
	if len(resumeWords) == 0 {
		return 0
	}
	jobWords := wordSet(jobText)
	if len(jobWords) == 0 {
		return 0
	}

	matched := 0
	for _, w := range resumeWords {
		if jobWords[w] {
			matched++
		}
	}
	d := float64(matched) / float64(len(resumeWords))
	if d > 1 {
		d = 1
	}
	return d
}

// JaccardSimilarity compares the lowercased word sets of two texts:
// |intersection| / |union|, 0 when the union is empty.
func JaccardSimilarity(a, b string) float64 {
	wa := wordSet(a)
	wb := wordSet(b)

	inter := 0
	for w := range wa {
		if wb[w] {
			inter++
		}
	}
	union := len(wa) + len(wb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func wordSet(text string) map[string]bool {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return nil
	}
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
