// Package llm provides clients for the completion services that generate
// the training analysis.
package llm

import "context"

// Request is one completion exchange.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Response is the part of the provider's reply the analyzer consumes.
type Response struct {
	Text      string
	Truncated bool // provider stopped at the generation-length limit
}

// Client defines the interface for completion providers.
type Client interface {
	// Complete sends a system and user message and returns the generated
	// text.
	Complete(ctx context.Context, req Request) (*Response, error)
}
