package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/escape-plans", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
			{Path: "/job-applications/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		},
	}
}

func TestLimiterEnforcesBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	// Burst of 2 on plan generation: third immediate request is rejected.
	allowed, _ := l.Allow("1.2.3.4", "/escape-plans", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/escape-plans", "POST")
	assert.True(t, allowed)
	allowed, info := l.Allow("1.2.3.4", "/escape-plans", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.1.1.1", "/escape-plans", "POST")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("1.1.1.1", "/escape-plans", "POST")
	assert.False(t, allowed)

	// A different client still has a full bucket.
	allowed, _ = l.Allow("2.2.2.2", "/escape-plans", "POST")
	assert.True(t, allowed)
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/escape-plans", "POST")
		require.True(t, allowed)
	}
}

func TestLimiterWhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	cfg.Blacklist["10.0.0.2"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/escape-plans", "POST")
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("10.0.0.2", "/health", "POST")
	assert.False(t, allowed)
}

func TestLimiterUsesDefaultForUnknownEndpoints(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 3
	cfg.DefaultWindow = time.Hour
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/dashboard", "GET")
		require.Truef(t, allowed, "request %d", i)
	}
	allowed, _ := l.Allow("1.2.3.4", "/dashboard", "GET")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{path: "/escape-plans", method: "POST", wantLimit: 10},
		{path: "/auth/login", method: "POST", wantLimit: 20},
		{path: "/job-applications", method: "POST", wantLimit: 100},
		{path: "/job-applications/abc-123", method: "PUT", wantLimit: 100},
		{path: "/job-applications/abc-123", method: "DELETE", wantLimit: 100},
		{path: "/escape-plans", method: "GET", wantNil: true},
		{path: "/dashboard", method: "GET", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestMatchEndpointHealthUnlimited(t *testing.T) {
	got := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Limit)
}

func TestTokenBucketRefills(t *testing.T) {
	// 100 tokens/sec, capacity 1: drained bucket becomes usable again.
	tb := newTokenBucket(1, 100)
	require.True(t, tb.allow())
	assert.False(t, tb.allow())

	time.Sleep(30 * time.Millisecond)
	assert.True(t, tb.allow())
}
