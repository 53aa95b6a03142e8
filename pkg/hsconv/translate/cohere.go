package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const cohereChatURL = "https://api.cohere.com/v2/chat"

// CohereModel translates descriptions with the Cohere chat API.
type CohereModel struct {
	apiKey string
	model  string
	client *http.Client
}

// NewCohereModel returns a translation model backed by the Cohere API.
// An empty model name means command-r.
func NewCohereModel(apiKey, model string) (*CohereModel, error) {
	if apiKey == "" {
		return nil, errors.New("cohere api key is required")
	}
	if model == "" {
		model = "command-r"
	}
	return &CohereModel{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Name implements Model.
func (m *CohereModel) Name() string { return "cohere" }

type cohereChatRequest struct {
	Model       string              `json:"model"`
	Messages    []cohereChatMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type cohereChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type cohereChatResponse struct {
	Message struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
}

// Translate implements Model.
func (m *CohereModel) Translate(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Translate the following Harmonized System product description "+
		"from English to Vietnamese.\nOnly provide the translation, no explanations.\n\n"+
		"English: %s\nVietnamese:", text)

	body, err := json.Marshal(cohereChatRequest{
		Model:       m.model,
		Messages:    []cohereChatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   100,
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cohereChatURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cohere chat: status %d: %s", resp.StatusCode, data)
	}

	var out cohereChatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("cohere chat: decode response: %w", err)
	}
	if len(out.Message.Content) == 0 {
		return "", errors.New("cohere returned no content")
	}
	return strings.TrimSpace(out.Message.Content[0].Text), nil
}
