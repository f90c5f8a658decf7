package utils

// SafetyThreshold is one (category, threshold) pair in provider-neutral form.
// The Gemini client maps these onto genai harm categories; the OpenAI client
// ignores them.
type SafetyThreshold struct {
	Category  string
	Threshold string
}

// ModelConfig holds the process-wide generation defaults. It is built once at
// startup and only ever copied, never mutated.
type ModelConfig struct {
	Model            string
	Temperature      float32
	TopP             float32
	TopK             int32
	MaxOutputTokens  int32
	ResponseMIMEType string
	SafetySettings   []SafetyThreshold
}

// GenerationOverrides carries optional per-call tuning. Nil pointer fields
// keep the process default; a non-nil SafetySettings slice replaces the
// default list wholesale.
type GenerationOverrides struct {
	Temperature     *float32
	TopP            *float32
	TopK            *int32
	MaxOutputTokens *int32
	SafetySettings  []SafetyThreshold
}

// DefaultModelConfig returns the baseline configuration for the given model
// id: JSON-only responses, conservative sampling, medium-and-above safety
// blocking on the four standard harm categories.
func DefaultModelConfig(model string) ModelConfig {
	return ModelConfig{
		Model:            model,
		Temperature:      0.3,
		TopP:             0.8,
		TopK:             40,
		MaxOutputTokens:  4096,
		ResponseMIMEType: "application/json",
		SafetySettings: []SafetyThreshold{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		},
	}
}

// Merge produces the effective per-call configuration: override fields win
// key-by-key, unset fields retain the defaults, and a non-nil safety list
// replaces the default list entirely.
func (c ModelConfig) Merge(ov *GenerationOverrides) ModelConfig {
	if ov == nil {
		return c
	}
	merged := c
	if ov.Temperature != nil {
		merged.Temperature = *ov.Temperature
	}
	if ov.TopP != nil {
		merged.TopP = *ov.TopP
	}
	if ov.TopK != nil {
		merged.TopK = *ov.TopK
	}
	if ov.MaxOutputTokens != nil {
		merged.MaxOutputTokens = *ov.MaxOutputTokens
	}
	if ov.SafetySettings != nil {
		merged.SafetySettings = ov.SafetySettings
	}
	return merged
}
