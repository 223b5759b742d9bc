package embedding

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"resume-match/internal/domain/matching"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-embedding-001"

// Scorer computes semantic similarity from Gemini sentence embeddings.
// The client is created once on first use; if that fails the scorer is
// marked unavailable for the life of the process and every call takes
// the Jaccard fallback. It satisfies matching.SimilarityScorer.
type Scorer struct {
	apiKey string
	model  string
	log    *log.Logger

	once        sync.Once
	client      *genai.Client
	unavailable bool
}

func NewScorer(apiKey, model string, logger *log.Logger) *Scorer {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scorer{apiKey: apiKey, model: model, log: logger}
}

func (s *Scorer) init(ctx context.Context) {
	s.once.Do(func() {
		if s.apiKey == "" {
			s.unavailable = true
			s.log.Printf("embedding model disabled: no API key configured, using Jaccard fallback")
			return
		}
		initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := genai.NewClient(initCtx, &genai.ClientConfig{
			APIKey:  s.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			s.unavailable = true
			s.log.Printf("embedding model unavailable, using Jaccard fallback permanently: %v", err)
			return
		}
		s.client = client
	})
}

// Score embeds both texts and returns their cosine similarity mapped to
// [0,1]. Any failure degrades to the Jaccard word-set similarity.
func (s *Scorer) Score(ctx context.Context, a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	s.init(ctx)
	if s.unavailable {
		return matching.JaccardSimilarity(a, b)
	}

	contents := append(genai.Text(a), genai.Text(b)...)
	res, err := s.client.Models.EmbedContent(ctx, s.model, contents, nil)
	if err != nil || res == nil || len(res.Embeddings) < 2 {
		if err != nil {
			s.log.Printf("embed content failed, falling back to Jaccard: %v", err)
		}
		return matching.JaccardSimilarity(a, b)
	}

	sim := cosine(res.Embeddings[0].Values, res.Embeddings[1].Values)
	if math.IsNaN(sim) {
		return matching.JaccardSimilarity(a, b)
	}
	// Cosine lands in [-1,1]; scores are defined on [0,1].
	if sim < 0 {
		sim = 0
	}
	if sim > 1 {
		sim = 1
	}
	return sim
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return math.NaN()
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return math.NaN()
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
