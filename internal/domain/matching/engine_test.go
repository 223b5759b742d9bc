package matching

import (
	"context"
	"math"
	"testing"

	"resume-match/internal/domain/skill"
)

func skillsOf(names ...string) skill.Set {
	s := skill.Set{}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func TestSkillMatch(t *testing.T) {
	cases := []struct {
		name   string
		resume []string
		job    []string
		want   float64
	}{
		{"two of three", []string{"Python", "Django", "Docker"}, []string{"Python", "Django", "Kubernetes"}, 2.0 / 3.0},
		{"full overlap", []string{"Python"}, []string{"Python"}, 1},
		{"no overlap", []string{"Python"}, []string{"Rust"}, 0},
		{"empty job requirements", []string{"Python"}, nil, 0},
		{"empty resume", nil, []string{"Python"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SkillMatch(skillsOf(tc.resume...), skillsOf(tc.job...))
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestKeywordDensity(t *testing.T) {
	got := KeywordDensity("Python developer with Django experience", "Python Django developer needed")
	if got <= 0.5 {
		t.Fatalf("expected density above 0.5, got %v", got)
	}
	if got > 1 {
		t.Fatalf("density must be capped at 1, got %v", got)
	}

	if got := KeywordDensity("", "anything"); got != 0 {
		t.Fatalf("expected 0 for empty resume, got %v", got)
	}
	if got := KeywordDensity("anything", ""); got != 0 {
		t.Fatalf("expected 0 for empty job text, got %v", got)
	}
}

func TestJaccardSimilarity(t *testing.T) {
	if got := JaccardSimilarity("go redis fiber", "go redis fiber"); got != 1 {
		t.Fatalf("expected 1 for identical texts, got %v", got)
	}

	a, b := "alpha beta gamma", "beta gamma delta"
	if JaccardSimilarity(a, b) != JaccardSimilarity(b, a) {
		t.Fatalf("jaccard must be symmetric")
	}

	if got := JaccardSimilarity("", ""); got != 0 {
		t.Fatalf("expected 0 for empty union, got %v", got)
	}
	if got := JaccardSimilarity("alpha", "beta"); got != 0 {
		t.Fatalf("expected 0 for disjoint texts, got %v", got)
	}
}

func TestCalculate_CompleteMismatch(t *testing.T) {
	resume := "Office administrator skilled in Microsoft Excel and scheduling"
	job := "Site reliability engineer working with Kubernetes, Terraform and AWS"

	s := Calculate(context.Background(), resume, job,
		skillsOf("Excel"), skillsOf("Kubernetes", "Terraform", "AWS"),
		JaccardScorer{}, DefaultThresholds())

	if !s.CompleteMismatch {
		t.Fatalf("expected complete mismatch, scores %+v", s)
	}
	if s.OverallScore < 0 || s.OverallScore > 100 {
		t.Fatalf("overall score out of range: %d", s.OverallScore)
	}
	if !s.IsLowScore(DefaultThresholds()) {
		t.Fatalf("expected low score, got %d", s.OverallScore)
	}
}

func TestCalculate_WeightsSumToOverall(t *testing.T) {
	resume := "Senior Python developer, 5 years experience with Django, PostgreSQL and Docker"
	job := "Looking for a Python developer with Django and PostgreSQL experience"

	s := Calculate(context.Background(), resume, job,
		skillsOf("Python", "Django", "PostgreSQL", "Docker"),
		skillsOf("Python", "Django", "PostgreSQL"),
		JaccardScorer{}, DefaultThresholds())

	weighted := s.SkillMatch*WeightSkillMatch +
		s.ExperienceMatch*WeightExperienceMatch +
		s.KeywordDensity*WeightKeywordDensity +
		s.SemanticSimilarity*WeightSemanticSimilarity
	want := int(math.Round(weighted * 100))
	if s.OverallScore != want {
		t.Fatalf("expected overall %d, got %d", want, s.OverallScore)
	}
	if s.SkillMatch != 1 {
		t.Fatalf("expected full skill match, got %v", s.SkillMatch)
	}
	if s.CompleteMismatch {
		t.Fatalf("did not expect a mismatch for aligned texts")
	}
}

func TestCalculate_NilScorerFallsBackToJaccard(t *testing.T) {
	a, b := "go developer", "go developer"
	s := Calculate(context.Background(), a, b, skillsOf("Go"), skillsOf("Go"), nil, DefaultThresholds())
	if s.SemanticSimilarity != 1 {
		t.Fatalf("expected jaccard fallback of 1, got %v", s.SemanticSimilarity)
	}
}
