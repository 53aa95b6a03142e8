package embed

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// sampleDefaultDim matches the text-embedding-3-small vector size so sample
// artifacts are drop-in stand-ins for real ones.
const sampleDefaultDim = 1536

// Sample produces deterministic pseudo-random unit vectors seeded by the
// input text. It needs no network or API key and exists for tests and
// offline pipeline runs.
type Sample struct {
	dim int
}

// NewSample returns a sample embedder. The model string may be "sample-<n>"
// to pick an output dimension; anything else uses 1536.
func NewSample(model string) *Sample {
	dim := sampleDefaultDim
	if n, err := strconv.Atoi(strings.TrimPrefix(model, "sample-")); err == nil && n > 0 {
		dim = n
	}
	return &Sample{dim: dim}
}

// Provider implements Embedder.
func (e *Sample) Provider() string { return "sample" }

// Model implements Embedder.
func (e *Sample) Model() string { return "sample-" + strconv.Itoa(e.dim) }

// Dimension implements Embedder.
func (e *Sample) Dimension() int { return e.dim }

// EmbedBatch implements Embedder. The same text always yields the same
// vector.
func (e *Sample) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vectors[i] = e.vector(text)
	}
	return vectors, nil
}

// vector builds a normalized gaussian vector seeded by the text hash.
func (e *Sample) vector(text string) []float64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	vec := make([]float64, e.dim)
	var sumSq float64
	for i := range vec {
		vec[i] = rng.NormFloat64()
		sumSq += vec[i] * vec[i]
	}
	if mag := math.Sqrt(sumSq); mag > 0 {
		for i := range vec {
			vec[i] /= mag
		}
	}
	return vec
}
