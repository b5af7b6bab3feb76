package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterClient implements the Client interface against OpenRouter's
// OpenAI-compatible API.
type OpenRouterClient struct {
	client openai.Client
	model  string
}

// NewOpenRouterClient creates a new OpenRouter client.
func NewOpenRouterClient(model, baseURL, apiKey string) (*OpenRouterClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("openrouter model is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openrouter api key is required")
	}
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithHeader("X-Title", "fast"),
	)

	return &OpenRouterClient{client: client, model: model}, nil
}

// Complete sends the prompt and returns the generated analysis. Some
// hosted models reject the max_tokens parameter in favor of
// max_completion_tokens; that rejection gets exactly one fallback attempt
// with the alternate name, and if both fail the error carries both
// failures.
func (c *OpenRouterClient) Complete(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.client.Chat.Completions.New(ctx, c.params(req, false))
	if err != nil && isMaxTokensRejection(err) {
		retryResp, retryErr := c.client.Chat.Completions.New(ctx, c.params(req, true))
		if retryErr != nil {
			return nil, fmt.Errorf("chat completion rejected max_tokens (%v) and max_completion_tokens: %w", err, retryErr)
		}
		resp, err = retryResp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices returned")
	}
	choice := resp.Choices[0]
	return &Response{
		Text:      choice.Message.Content,
		Truncated: choice.FinishReason == "length",
	}, nil
}

func (c *OpenRouterClient) params(req Request, useCompletionTokens bool) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if useCompletionTokens {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	} else {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	return params
}

func isMaxTokensRejection(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "max_tokens")
}
