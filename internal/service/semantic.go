package service

import (
	"context"
	"math"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
)

// SemanticMatcher compares session text against trigger phrases by cosine
// similarity of their embeddings. It widens pattern recall to paraphrases
// the token tier cannot see. A disabled matcher is a nil *SemanticMatcher
// at the call site, never one with a nil client.
type SemanticMatcher struct {
	embedder  domain.EmbeddingClient
	threshold float64
}

func NewSemanticMatcher(embedder domain.EmbeddingClient, threshold float64) *SemanticMatcher {
	return &SemanticMatcher{embedder: embedder, threshold: threshold}
}

// Match returns the best-scoring trigger phrase whose similarity to the text
// meets the threshold, or ok=false when none does.
func (m *SemanticMatcher) Match(ctx context.Context, text string, phrases []string) (string, bool, error) {
	textVec, err := m.embedder.Embed(ctx, Normalize(text))
	if err != nil {
		return "", false, err
	}

	best := ""
	bestScore := 0.0
	for _, phrase := range phrases {
		vec, err := m.embedder.Embed(ctx, Normalize(phrase))
		if err != nil {
			return "", false, err
		}
		if score := cosineSimilarity(textVec, vec); score > bestScore {
			best, bestScore = phrase, score
		}
	}

	if bestScore < m.threshold {
		return "", false, nil
	}
	return best, true, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
