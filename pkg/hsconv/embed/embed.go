// Package embed converts HS code text into dense vector embeddings via
// remote APIs or a deterministic local provider.
package embed

import (
	"context"
	"errors"
	"fmt"
)

// Embedder converts batches of text into embedding vectors.
type Embedder interface {
	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)

	// Dimension returns the dimensionality of the output vectors, or 0
	// when it is not known ahead of the first call.
	Dimension() int

	// Provider returns the provider name ("openai", "cohere", ...).
	Provider() string

	// Model returns the model identifier used for embedding.
	Model() string
}

// ErrRateLimited marks a provider rate-limit response. The generator
// retries batches that fail with this error; any other failure aborts the
// run.
var ErrRateLimited = errors.New("embed: rate limited")

// ErrEmptyInput is returned when a batch contains no texts.
var ErrEmptyInput = errors.New("embed: empty input")

// New returns an embedder for the named provider. An empty model selects
// the provider default.
func New(provider, model, apiKey string) (Embedder, error) {
	switch provider {
	case "openai":
		return NewOpenAI(apiKey, model)
	case "cohere":
		return NewCohere(apiKey, model)
	case "huggingface":
		return NewHuggingFace(apiKey, model)
	case "sample":
		return NewSample(model), nil
	}
	return nil, fmt.Errorf("unknown embedding provider %q (must be openai, cohere, huggingface, or sample)", provider)
}
