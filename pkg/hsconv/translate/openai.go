package translate

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const translateSystemPrompt = "You are a professional translator. Translate " +
	"Harmonized System product descriptions from English to Vietnamese. " +
	"Only provide the translation, no explanations."

// OpenAIModel translates descriptions with an OpenAI chat model.
type OpenAIModel struct {
	client *openai.Client
	model  string
}

// NewOpenAIModel returns a translation model backed by the OpenAI API.
// An empty model name means gpt-3.5-turbo.
func NewOpenAIModel(apiKey, model string) (*OpenAIModel, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIModel{client: openai.NewClient(apiKey), model: model}, nil
}

// Name implements Model.
func (m *OpenAIModel) Name() string { return "openai" }

// Translate implements Model.
func (m *OpenAIModel) Translate(ctx context.Context, text string) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translateSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Translate to Vietnamese:\n" + text},
		},
		Temperature: 0.3,
		MaxTokens:   100,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
