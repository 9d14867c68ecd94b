// Package llm provides the Gemini client abstraction used by the
// escape-plan pipeline.
package llm

import "os"

// DefaultModel is the generative model the plan pipeline targets.
const DefaultModel = "gemini-1.5-pro"

// GenerationConfig holds the sampling parameters for a generation request.
type GenerationConfig struct {
	Temperature     float32
	TopK            int32
	TopP            float32
	MaxOutputTokens int32
}

// PlanGenerationConfig returns the fixed configuration used for escape-plan
// generation. These values are part of the pipeline contract and are not
// user-tunable.
func PlanGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 4096,
	}
}

// Config holds the model configuration for the client.
type Config struct {
	Model      string
	Generation GenerationConfig
}

// DefaultConfig returns the default Gemini configuration. The model name
// can be overridden through GEMINI_MODEL.
func DefaultConfig() *Config {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return &Config{
		Model:      model,
		Generation: PlanGenerationConfig(),
	}
}
