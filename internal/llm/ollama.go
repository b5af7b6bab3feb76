package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"
)

const defaultOllamaBaseURL = "http://localhost:11434"

// OllamaClient implements the Client interface using a local Ollama
// backend.
type OllamaClient struct {
	client *ollama.LLM
	model  string
}

// NewOllamaClient creates a new Ollama client.
func NewOllamaClient(model, baseURL string) (*OllamaClient, error) {
	if model == "" {
		return nil, errors.New("ollama model is required")
	}
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	client, err := ollama.New(
		ollama.WithModel(model),
		ollama.WithServerURL(baseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}

	return &OllamaClient{client: client, model: model}, nil
}

// Complete sends the prompt and returns the generated analysis.
func (c *OllamaClient) Complete(ctx context.Context, req Request) (*Response, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, req.System),
		llms.TextParts(schema.ChatMessageTypeHuman, req.User),
	}

	resp, err := c.client.GenerateContent(ctx, messages,
		llms.WithModel(c.model),
		llms.WithTemperature(req.Temperature),
		llms.WithMaxTokens(req.MaxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("ollama chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices returned")
	}

	choice := resp.Choices[0]
	return &Response{
		Text:      choice.Content,
		Truncated: choice.StopReason == "length",
	}, nil
}
