package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare JSON unchanged",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "json fence stripped",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "generic fence stripped",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "fence with language identifier",
			input: "```javascript\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n{\"a\": 1}\n  ",
			want:  `{"a": 1}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestPlanGenerationConfig(t *testing.T) {
	cfg := PlanGenerationConfig()
	assert.Equal(t, float32(0.7), cfg.Temperature)
	assert.Equal(t, int32(40), cfg.TopK)
	assert.Equal(t, float32(0.95), cfg.TopP)
	assert.Equal(t, int32(4096), cfg.MaxOutputTokens)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")
	cfg := DefaultConfig()
	assert.Equal(t, DefaultModel, cfg.Model)

	t.Setenv("GEMINI_MODEL", "gemini-1.5-flash")
	cfg = DefaultConfig()
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
}
