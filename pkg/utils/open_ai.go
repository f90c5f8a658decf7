package utils

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIModelClient implements ModelClientInterface against the OpenAI chat
// completions API. Safety thresholds have no OpenAI equivalent and are
// ignored; JSON-only output is requested via response_format.
type OpenAIModelClient struct {
	client   *openai.Client
	defaults ModelConfig
}

func NewOpenAIModelClient(apiKey, model string) *OpenAIModelClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIModelClient{
		client:   openai.NewClient(apiKey),
		defaults: DefaultModelConfig(model),
	}
}

func (c *OpenAIModelClient) Generate(ctx context.Context, prompt string, overrides *GenerationOverrides) (ModelOutput, error) {
	cfg := c.defaults.Merge(overrides)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		MaxTokens:   int(cfg.MaxOutputTokens),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ModelOutput{}, fmt.Errorf("%w: openai: %v", ErrUpstreamTimeout, err)
		}
		return ModelOutput{}, fmt.Errorf("%w: openai: %v", ErrUpstreamFailure, err)
	}

	if len(resp.Choices) == 0 {
		return ModelOutput{}, fmt.Errorf("%w: openai: no choices returned", ErrUpstreamFailure)
	}

	return ModelOutput{
		Text: resp.Choices[0].Message.Content,
		Usage: TokenUsage{
			PromptTokens:     int32(resp.Usage.PromptTokens),
			CompletionTokens: int32(resp.Usage.CompletionTokens),
			TotalTokens:      int32(resp.Usage.TotalTokens),
		},
	}, nil
}

func (c *OpenAIModelClient) Close() error { return nil }
