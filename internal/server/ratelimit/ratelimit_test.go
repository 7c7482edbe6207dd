package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/analyze", Method: "POST", Limit: 3, Window: time.Minute, Burst: 3},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/analyze", "POST")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 3, info.Limit)
	}
}

func TestLimiter_BlocksOverBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		limiter.Allow("1.2.3.4", "/analyze", "POST")
	}

	allowed, info := limiter.Allow("1.2.3.4", "/analyze", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_SeparateClients(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		limiter.Allow("1.2.3.4", "/analyze", "POST")
	}

	allowed, _ := limiter.Allow("5.6.7.8", "/analyze", "POST")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/analyze", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("9.9.9.9", "/analyze", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("6.6.6.6", "/analyze", "POST")
	assert.False(t, allowed)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", nil)
	assert.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/analyze", Method: "POST", Limit: 10},
		{Path: "/feedback/", Method: "GET", Limit: 20},
	}

	exact := MatchEndpoint("/analyze", "POST", configs)
	assert.NotNil(t, exact)
	assert.Equal(t, 10, exact.Limit)

	prefix := MatchEndpoint("/feedback/summary", "GET", configs)
	assert.NotNil(t, prefix)
	assert.Equal(t, 20, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/unknown", "DELETE", configs))
}

func TestLoadConfig_DisabledViaEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestParseIPList(t *testing.T) {
	list := parseIPList(" 1.1.1.1, 2.2.2.2 ,")
	assert.True(t, list["1.1.1.1"])
	assert.True(t, list["2.2.2.2"])
	assert.Len(t, list, 2)
}
