package llm

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
)

// NewClient creates a completion client based on provider configuration.
func NewClient(provider, model, baseURL, apiKey string) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", ProviderOpenRouter:
		return NewOpenRouterClient(model, baseURL, apiKey)
	case ProviderOllama:
		return NewOllamaClient(model, baseURL)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
