package sections

import (
	"strings"
	"testing"
)

const sampleResume = `John Doe
Summary
Backend developer focused on distributed systems.
Experience
Acme Corp, built backend APIs for five years.
Education
Bachelor's Degree in Computer Science, State University
Skills
Go, Python, PostgreSQL
`

func TestSplitResume(t *testing.T) {
	got := SplitResume(sampleResume)

	for _, name := range []string{"contact", "summary", "experience", "education", "skills", "certifications"} {
		if _, ok := got[name]; !ok {
			t.Fatalf("missing section key %q", name)
		}
	}

	if !strings.Contains(got["summary"], "distributed systems") {
		t.Fatalf("summary not attributed: %q", got["summary"])
	}
	if !strings.Contains(got["experience"], "Acme Corp") {
		t.Fatalf("experience not attributed: %q", got["experience"])
	}
	if !strings.Contains(got["skills"], "PostgreSQL") {
		t.Fatalf("skills not attributed: %q", got["skills"])
	}
	if got["certifications"] != "" {
		t.Fatalf("expected empty certifications, got %q", got["certifications"])
	}
}

func TestSplitResume_LinesBeforeAnyHeaderDropped(t *testing.T) {
	got := SplitResume("random preamble line\nSkills\nGo")
	for name, body := range got {
		if strings.Contains(body, "preamble") {
			t.Fatalf("preamble leaked into %q: %q", name, body)
		}
	}
	if !strings.Contains(got["skills"], "Go") {
		t.Fatalf("skills not captured: %q", got["skills"])
	}
}

func TestExtractJobRequirements(t *testing.T) {
	got := ExtractJobRequirements("We need 3+ years experience and a Bachelor's degree in CS.")
	if got.ExperienceLevel != "3" {
		t.Fatalf("expected experience level 3, got %q", got.ExperienceLevel)
	}
	if got.EducationLevel != "bachelor's degree" {
		t.Fatalf("expected bachelor's degree, got %q", got.EducationLevel)
	}
	if got.RequiredSkills == nil || got.PreferredSkills == nil || got.Responsibilities == nil {
		t.Fatalf("skill and responsibility slices must be non-nil")
	}
}

func TestExtractJobRequirements_NoSignals(t *testing.T) {
	got := ExtractJobRequirements("Join our team.")
	if got.ExperienceLevel != "" || got.EducationLevel != "" {
		t.Fatalf("expected empty signals, got %+v", got)
	}
}

func TestExperienceYears(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"5 years experience with Go", 5},
		{"10+ years in backend", 10},
		{"Experience: 7 years", 7},
		{"no numbers here", 0},
	}
	for _, tc := range cases {
		if got := ExperienceYears(tc.text); got != tc.want {
			t.Fatalf("ExperienceYears(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestEducation(t *testing.T) {
	got := Education("Bachelor of Science\nWorked at Acme\nState University, 2019")
	if len(got) != 2 {
		t.Fatalf("expected 2 education lines, got %v", got)
	}
}
