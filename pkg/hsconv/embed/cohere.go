package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const cohereEmbedURL = "https://api.cohere.com/v2/embed"

// Cohere embeds text with the Cohere v2 embed API.
type Cohere struct {
	apiKey string
	model  string
	client *http.Client
}

// NewCohere returns a Cohere embedder. An empty model means
// embed-english-v3.0.
func NewCohere(apiKey, model string) (*Cohere, error) {
	if apiKey == "" {
		return nil, errors.New("cohere api key is required (set COHERE_API_KEY)")
	}
	if model == "" {
		model = "embed-english-v3.0"
	}
	return &Cohere{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// Provider implements Embedder.
func (e *Cohere) Provider() string { return "cohere" }

// Model implements Embedder.
func (e *Cohere) Model() string { return e.model }

// Dimension implements Embedder.
func (e *Cohere) Dimension() int {
	if e.model == "embed-english-v3.0" || e.model == "embed-multilingual-v3.0" {
		return 1024
	}
	return 0
}

type cohereEmbedRequest struct {
	Model          string   `json:"model"`
	Texts          []string `json:"texts"`
	InputType      string   `json:"input_type"`
	EmbeddingTypes []string `json:"embedding_types"`
}

type cohereEmbedResponse struct {
	Embeddings struct {
		Float [][]float64 `json:"float"`
	} `json:"embeddings"`
}

// EmbedBatch implements Embedder.
func (e *Cohere) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}
	body, err := json.Marshal(cohereEmbedRequest{
		Model:          e.model,
		Texts:          texts,
		InputType:      "search_document",
		EmbeddingTypes: []string{"float"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cohereEmbedURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: cohere status 429", ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cohere embed: status %d: %s", resp.StatusCode, data)
	}

	var out cohereEmbedResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cohere embed: decode response: %w", err)
	}
	if len(out.Embeddings.Float) != len(texts) {
		return nil, fmt.Errorf("cohere returned %d embeddings for %d texts", len(out.Embeddings.Float), len(texts))
	}
	return out.Embeddings.Float, nil
}
