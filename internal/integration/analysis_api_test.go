package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"resume-match/internal/config"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/routes"
	"resume-match/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type analyzeBody struct {
	OverallScore       int      `json:"overall_score"`
	SkillMatch         int      `json:"skill_match"`
	ExperienceMatch    int      `json:"experience_match"`
	KeywordDensity     int      `json:"keyword_density"`
	SemanticSimilarity int      `json:"semantic_similarity"`
	IsCompleteMismatch bool     `json:"is_complete_mismatch"`
	MismatchMessage    string   `json:"mismatch_message"`
	RequiredSkills     []string `json:"required_skills"`
	Strengths          []string `json:"strengths"`
	Improvements       []string `json:"improvements"`
}

type recommendationsBody struct {
	Recommendations []struct {
		ID              string   `json:"id"`
		Title           string   `json:"title"`
		MatchPercentage int      `json:"matchPercentage"`
		Skills          []string `json:"skills"`
		MatchingSkills  []string `json:"matchingSkills"`
		MissingSkills   []string `json:"missingSkills"`
	} `json:"recommendations"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())

	logger := log.New(io.Discard, "", 0)
	routes.NewRegistry().Register(app, config.Config{}, logger, new(cache.Redis))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, []byte) {
	t.Helper()

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, body
}

func TestAPI_Health(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
}

func TestAPI_Analyze(t *testing.T) {
	app := newTestApp(t)

	status, body := postJSON(t, app, "/api/v1/analyze", map[string]any{
		"resume_text":     "Senior Python developer with 6 years experience in Django, PostgreSQL and Docker.",
		"job_description": "Hiring a Python developer with Django and PostgreSQL experience. 3+ years experience required.",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var got analyzeBody
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, body)
	}
	if got.SkillMatch != 100 {
		t.Fatalf("expected skill_match 100, got %d", got.SkillMatch)
	}
	if got.OverallScore < 0 || got.OverallScore > 100 {
		t.Fatalf("overall_score out of range: %d", got.OverallScore)
	}
	if got.IsCompleteMismatch {
		t.Fatalf("aligned pair flagged as mismatch: %s", body)
	}
	if len(got.Strengths) == 0 || len(got.Improvements) == 0 {
		t.Fatalf("feedback missing: %s", body)
	}
}

func TestAPI_Analyze_Mismatch(t *testing.T) {
	app := newTestApp(t)

	status, body := postJSON(t, app, "/api/v1/analyze", map[string]any{
		"resume_text":     "Pastry chef specialized in croissant lamination and cake decoration.",
		"job_description": "Site reliability engineer. Kubernetes, Terraform and AWS required.",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var got analyzeBody
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, body)
	}
	if !got.IsCompleteMismatch {
		t.Fatalf("expected complete mismatch: %s", body)
	}
	if got.MismatchMessage == "" {
		t.Fatalf("expected mismatch message: %s", body)
	}
	if len(got.RequiredSkills) == 0 {
		t.Fatalf("expected required_skills on mismatch: %s", body)
	}
}

func TestAPI_Analyze_BadBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/analyze", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestAPI_JobRecommendations(t *testing.T) {
	app := newTestApp(t)

	status, body := postJSON(t, app, "/api/v1/job-recommendations", map[string]any{
		"resumeText": "React and TypeScript engineer with Node.js and MongoDB experience.",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var got recommendationsBody
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, body)
	}
	if len(got.Recommendations) != 10 {
		t.Fatalf("expected 10 recommendations, got %d", len(got.Recommendations))
	}
	for i, rec := range got.Recommendations {
		if rec.ID == "" || rec.Title == "" {
			t.Fatalf("recommendation %d incomplete: %+v", i, rec)
		}
		if len(rec.MatchingSkills)+len(rec.MissingSkills) != len(rec.Skills) {
			t.Fatalf("recommendation %d: skills not partitioned", i)
		}
		if i > 0 && rec.MatchPercentage > got.Recommendations[i-1].MatchPercentage {
			t.Fatalf("recommendations not sorted desc at %d", i)
		}
	}
}
