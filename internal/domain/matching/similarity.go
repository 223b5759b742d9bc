package matching

import "context"

// JaccardScorer is the deterministic SimilarityScorer used when no
// embedding model is configured, and the fallback when one fails.
type JaccardScorer struct{}

func (JaccardScorer) Score(_ context.Context, a, b string) float64 {
	return JaccardSimilarity(a, b)
}
