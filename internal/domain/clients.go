package domain

import "context"

// GenerativeClient is the single narrow boundary to an external
// text-generation service. Callers must treat any error as "unavailable"
// and fall back to their deterministic path; a failed call never aborts a
// session.
type GenerativeClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EmbeddingClient produces vector embeddings for the optional semantic
// matcher. It is an accelerant over the deterministic detectors, not
// required for correctness.
type EmbeddingClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
