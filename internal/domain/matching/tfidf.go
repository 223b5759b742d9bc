package matching

import (
	"math"
	"strings"
	"unicode"
)

// English stop words removed before vectorization. Keeping tech tokens
// like "c++", "c#" and "node.js" intact matters more than linguistic
// completeness here.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true,
	"for": true, "from": true, "had": true, "has": true, "have": true,
	"in": true, "into": true, "is": true, "it": true, "its": true,
	"of": true, "on": true, "or": true, "our": true, "that": true,
	"the": true, "their": true, "they": true, "this": true, "to": true,
	"was": true, "we": true, "were": true, "which": true, "will": true,
	"with": true, "you": true, "your": true, "about": true, "all": true,
	"also": true, "each": true, "how": true, "more": true, "not": true,
	"such": true, "than": true, "what": true, "who": true,
}

// ExperienceMatch is the cosine similarity between TF-IDF vectors of the
// two texts over their shared vocabulary. Degenerate input (empty text,
// empty post-stop-word vocabulary) yields 0, never an error.
func ExperienceMatch(resumeText, jobText string) float64 {
	a := termCounts(resumeText)
	b := termCounts(jobText)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	vocab := make(map[string]struct{}, len(a)+len(b))
	for t := range a {
		vocab[t] = struct{}{}
	}
	for t := range b {
		vocab[t] = struct{}{}
	}

	// Two-document corpus; smooth idf the way sklearn does:
	// idf(t) = ln((1+n)/(1+df)) + 1 with n=2.
	idf := func(t string) float64 {
		df := 0
		if a[t] > 0 {
			df++
		}
		if b[t] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	var dot, normA, normB float64
	for t := range vocab {
		w := idf(t)
		va := float64(a[t]) * w
		vb := float64(b[t]) * w
		dot += va * vb
		normA += va * va
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// termCounts tokenizes text into lowercase terms, treating + # . as word
// characters so tech suffixes survive, and drops stop words.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w == "" || stopWords[w] {
			return
		}
		counts[w]++
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return counts
}
