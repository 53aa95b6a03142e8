package embed

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openaiDims maps known OpenAI embedding models to their vector size.
var openaiDims = map[string]int{
	"text-embedding-3-small": 1536,
	"text-embedding-3-large": 3072,
	"text-embedding-ada-002": 1536,
}

// OpenAI embeds text with the OpenAI embeddings API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI returns an OpenAI embedder. An empty model means
// text-embedding-3-small.
func NewOpenAI(apiKey, model string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required (set OPENAI_API_KEY)")
	}
	if model == "" {
		model = "text-embedding-3-small"
	}
	return &OpenAI{client: openai.NewClient(apiKey), model: model}, nil
}

// Provider implements Embedder.
func (e *OpenAI) Provider() string { return "openai" }

// Model implements Embedder.
func (e *OpenAI) Model() string { return e.model }

// Dimension implements Embedder.
func (e *OpenAI) Dimension() int { return openaiDims[e.model] }

// EmbedBatch implements Embedder. HTTP 429 responses surface as
// ErrRateLimited so the generator can back off and retry.
func (e *OpenAI) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai returned %d embeddings for %d texts", len(resp.Data), len(texts))
	}
	vectors := make([][]float64, len(resp.Data))
	for i, d := range resp.Data {
		vec := make([]float64, len(d.Embedding))
		for j, v := range d.Embedding {
			vec[j] = float64(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}
