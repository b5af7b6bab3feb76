package analyzer

import "strings"

// reasoningModelFragments identifies models that burn output tokens on
// hidden reasoning before answering. Matched as substrings of the
// lowercased model identifier.
var reasoningModelFragments = []string{
	"o1",
	"o3",
	"o4",
	"gpt-5",
	"deepseek-r1",
	"qwq",
	"reasoning",
	"thinking",
}

// GenerationParams holds the completion parameters selected for a model.
type GenerationParams struct {
	Temperature float64
	MaxTokens   int
}

// IsReasoningModel reports whether the model identifier names a known
// reasoning model.
func IsReasoningModel(model string) bool {
	m := strings.ToLower(model)
	for _, fragment := range reasoningModelFragments {
		if strings.Contains(m, fragment) {
			return true
		}
	}
	return false
}

// ParamsFor selects generation parameters for the model. Reasoning models
// need a larger budget because reasoning tokens count against the output
// limit, and they only accept temperature 1.0.
func ParamsFor(model string) GenerationParams {
	if IsReasoningModel(model) {
		return GenerationParams{Temperature: 1.0, MaxTokens: 8000}
	}
	return GenerationParams{Temperature: 0.7, MaxTokens: 2000}
}
