package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// upstreamCallTimeout bounds every model invocation. The external call is the
// only source of variable latency in the pipeline, so an expired deadline is
// surfaced as a distinct error kind.
const upstreamCallTimeout = 30 * time.Second

// GeminiModelClient implements ModelClientInterface using Google's Gemini
// models.
type GeminiModelClient struct {
	client   *genai.Client
	defaults ModelConfig
}

// NewGeminiModelClient creates a new Gemini client.
func NewGeminiModelClient(apiKey, model string) (*GeminiModelClient, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiModelClient{
		client:   client,
		defaults: DefaultModelConfig(model),
	}, nil
}

func (c *GeminiModelClient) Generate(ctx context.Context, prompt string, overrides *GenerationOverrides) (ModelOutput, error) {
	cfg := c.defaults.Merge(overrides)

	m := c.client.GenerativeModel(cfg.Model)
	m.ResponseMIMEType = cfg.ResponseMIMEType
	m.SetTemperature(cfg.Temperature)
	m.SetTopP(cfg.TopP)
	m.SetTopK(cfg.TopK)
	m.SetMaxOutputTokens(cfg.MaxOutputTokens)
	m.SafetySettings = geminiSafetySettings(cfg.SafetySettings)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ModelOutput{}, fmt.Errorf("%w: gemini: %v", ErrUpstreamTimeout, err)
		}
		return ModelOutput{}, fmt.Errorf("%w: gemini: %v", ErrUpstreamFailure, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ModelOutput{}, fmt.Errorf("%w: gemini: no content generated", ErrUpstreamFailure)
	}

	out := ModelOutput{
		Text: fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]),
	}
	if resp.UsageMetadata != nil {
		out.Usage = TokenUsage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}
	return out, nil
}

// Close closes the underlying Gemini client.
func (c *GeminiModelClient) Close() error {
	return c.client.Close()
}

func geminiSafetySettings(thresholds []SafetyThreshold) []*genai.SafetySetting {
	categories := map[string]genai.HarmCategory{
		"HARM_CATEGORY_HARASSMENT":        genai.HarmCategoryHarassment,
		"HARM_CATEGORY_HATE_SPEECH":       genai.HarmCategoryHateSpeech,
		"HARM_CATEGORY_SEXUALLY_EXPLICIT": genai.HarmCategorySexuallyExplicit,
		"HARM_CATEGORY_DANGEROUS_CONTENT": genai.HarmCategoryDangerousContent,
	}
	blocks := map[string]genai.HarmBlockThreshold{
		"BLOCK_NONE":             genai.HarmBlockNone,
		"BLOCK_ONLY_HIGH":        genai.HarmBlockOnlyHigh,
		"BLOCK_MEDIUM_AND_ABOVE": genai.HarmBlockMediumAndAbove,
		"BLOCK_LOW_AND_ABOVE":    genai.HarmBlockLowAndAbove,
	}

	var settings []*genai.SafetySetting
	for _, t := range thresholds {
		category, ok := categories[t.Category]
		if !ok {
			continue
		}
		block, ok := blocks[t.Threshold]
		if !ok {
			block = genai.HarmBlockMediumAndAbove
		}
		settings = append(settings, &genai.SafetySetting{Category: category, Threshold: block})
	}
	return settings
}
