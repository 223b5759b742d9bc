package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"resume-match/internal/domain/matching"
	"resume-match/internal/infrastructure/embedding"
)

type Config struct {
	App       AppConfig
	Matching  MatchingConfig
	Embedding EmbeddingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type MatchingConfig struct {
	MismatchThreshold float64
	LowScoreThreshold int
}

type EmbeddingConfig struct {
	GeminiAPIKey string
	Model        string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Matching = MatchingConfig{
		MismatchThreshold: optFloat(opt("MISMATCH_THRESHOLD"), matching.DefaultMismatchThreshold),
		LowScoreThreshold: optInt(opt("LOW_SCORE_THRESHOLD"), matching.DefaultLowScoreThreshold),
	}

	cfg.Embedding = EmbeddingConfig{
		GeminiAPIKey: opt("GEMINI_API_KEY"),
		Model:        opt("EMBEDDING_MODEL"),
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = embedding.DefaultModel
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// Thresholds exposes the matching cutoffs in the form the scoring engine takes.
func (c Config) Thresholds() matching.Thresholds {
	return matching.Thresholds{
		Mismatch: c.Matching.MismatchThreshold,
		LowScore: c.Matching.LowScoreThreshold,
	}
}

func optFloat(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func optInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
