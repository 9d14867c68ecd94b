package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/shftrr")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.GeminiAPIKey)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shftrr")

	t.Setenv("PORT", "not-a-number")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PORT", "70000")
	_, err = Load()
	assert.Error(t, err)
}
