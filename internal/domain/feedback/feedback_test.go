package feedback

import (
	"strings"
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

func TestStrengths(t *testing.T) {
	resume := skillsOf("Python", "Django", "PostgreSQL", "Docker", "AWS", "Git")
	job := skillsOf("Python", "Django", "PostgreSQL")
	matching := resume.Intersect(job)

	got := Strengths(resume, job, matching)
	if len(got) != 3 {
		t.Fatalf("expected 3 strengths, got %v", got)
	}
	if !strings.HasPrefix(got[0], "Strong technical skills in ") {
		t.Fatalf("unexpected first strength: %q", got[0])
	}
	if got[1] != "Diverse skill set with multiple technologies" {
		t.Fatalf("unexpected second strength: %q", got[1])
	}
	if got[2] != "Excellent alignment with job requirements" {
		t.Fatalf("unexpected third strength: %q", got[2])
	}
}

func TestStrengths_Fallback(t *testing.T) {
	got := Strengths(skill.Set{}, skillsOf("Python"), skill.Set{})
	if len(got) != 1 || got[0] != "Good technical foundation" {
		t.Fatalf("expected fallback strength, got %v", got)
	}
}

func TestImprovements(t *testing.T) {
	resume := skillsOf("Python")
	missing := skillsOf("Kubernetes", "Terraform")

	got := Improvements(resume, missing)
	if len(got) != 2 {
		t.Fatalf("expected 2 improvements, got %v", got)
	}
	if !strings.HasPrefix(got[0], "Add missing skills: ") {
		t.Fatalf("unexpected first improvement: %q", got[0])
	}
	if got[1] != "Expand your technical skill set" {
		t.Fatalf("unexpected second improvement: %q", got[1])
	}
}

func TestImprovements_EmptyResume(t *testing.T) {
	got := Improvements(skill.Set{}, skill.Set{})
	want := []string{"Expand your technical skill set", "Highlight technical skills in your resume"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestImprovements_Fallback(t *testing.T) {
	got := Improvements(skillsOf("Python", "Django", "Docker"), skill.Set{})
	if len(got) != 1 || got[0] != "Continue developing your technical skills" {
		t.Fatalf("expected fallback improvement, got %v", got)
	}
}

func TestProjects_MatchesMissingSkills(t *testing.T) {
	job := skillsOf("React", "Node.js", "MongoDB")
	resume := skillsOf("Python")

	got := Projects(job, resume)
	if len(got) == 0 {
		t.Fatalf("expected project suggestions")
	}
	if got[0].Title != "Full-Stack Web Application" {
		t.Fatalf("unexpected first project: %q", got[0].Title)
	}
	if !strings.HasPrefix(got[0].Relevance, "Develops missing skills: ") {
		t.Fatalf("unexpected relevance: %q", got[0].Relevance)
	}
	if len(got) > 3 {
		t.Fatalf("at most 3 suggestions, got %d", len(got))
	}
}

func TestProjects_Fallback(t *testing.T) {
	got := Projects(skillsOf("COBOL"), skill.Set{})
	if len(got) != 1 || got[0].Title != "Portfolio Project" {
		t.Fatalf("expected generic portfolio fallback, got %v", got)
	}
}
