package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const huggingFaceBaseURL = "https://api-inference.huggingface.co/models/"

// HuggingFace embeds text with the Hugging Face inference API
// (feature-extraction pipeline). The API token is optional for public
// models but avoids the anonymous rate limits.
type HuggingFace struct {
	token  string
	model  string
	client *http.Client
}

// NewHuggingFace returns a Hugging Face embedder. An empty model means
// BAAI/bge-base-en-v1.5.
func NewHuggingFace(token, model string) (*HuggingFace, error) {
	if model == "" {
		model = "BAAI/bge-base-en-v1.5"
	}
	return &HuggingFace{
		token:  token,
		model:  model,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// Provider implements Embedder.
func (e *HuggingFace) Provider() string { return "huggingface" }

// Model implements Embedder.
func (e *HuggingFace) Model() string { return e.model }

// Dimension implements Embedder. The dimension is model-dependent and only
// known after the first call.
func (e *HuggingFace) Dimension() int { return 0 }

type huggingFaceRequest struct {
	Inputs  []string `json:"inputs"`
	Options struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

// EmbedBatch implements Embedder.
func (e *HuggingFace) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}
	reqBody := huggingFaceRequest{Inputs: texts}
	reqBody.Options.WaitForModel = true
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, huggingFaceBaseURL+e.model, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
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
		return nil, fmt.Errorf("%w: huggingface status 429", ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("huggingface inference: status %d: %s", resp.StatusCode, data)
	}

	var vectors [][]float64
	if err := json.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("huggingface inference: decode response: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("huggingface returned %d embeddings for %d texts", len(vectors), len(texts))
	}
	return vectors, nil
}
