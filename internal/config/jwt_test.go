package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_DefaultValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours, "should use default expiration of 24 hours")
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	tests := []struct {
		name          string
		expiration    string
		expectedHours int
		wantErr       bool
	}{
		{name: "custom expiration 12 hours", expiration: "12", expectedHours: 12},
		{name: "custom expiration 48 hours", expiration: "48", expectedHours: 48},
		{name: "minimum expiration 1 hour", expiration: "1", expectedHours: 1},
		{name: "one week", expiration: "168", expectedHours: 168},
		{name: "zero hours rejected", expiration: "0", wantErr: true},
		{name: "negative rejected", expiration: "-5", wantErr: true},
		{name: "non-numeric rejected", expiration: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret-key")
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)

			cfg, err := NewJWTConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				assert.Equal(t, tt.expectedHours, cfg.ExpirationHours)
			}
		})
	}
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
