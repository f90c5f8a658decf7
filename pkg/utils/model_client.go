package utils

import (
	"context"
	"fmt"
	"strings"
)

// TokenUsage mirrors the counters reported by the provider for one call.
type TokenUsage struct {
	PromptTokens     int32
	CompletionTokens int32
	TotalTokens      int32
}

// ModelOutput is the raw completion plus its usage counters.
type ModelOutput struct {
	Text  string
	Usage TokenUsage
}

// ModelClientInterface wraps the external generative-model capability. It is
// the pipeline's only I/O dependency; callers get the text back untouched and
// decide themselves whether it parses.
type ModelClientInterface interface {
	Generate(ctx context.Context, prompt string, overrides *GenerationOverrides) (ModelOutput, error)
	Close() error
}

// NewModelClient creates a provider client based on configuration.
func NewModelClient(provider, apiKey, model string) (ModelClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIModelClient(apiKey, model), nil
	case "gemini", "":
		client, err := NewGeminiModelClient(apiKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported model provider: %s. Use 'gemini' or 'openai'", provider)
	}
}
