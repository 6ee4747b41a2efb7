package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadMemoryDriverDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "15")
	t.Setenv("REFRESH_TOKEN_TTL_DAYS", "7")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	c := Load()

	assert.Equal(t, DriverMemory, c.StoreDriver)
	assert.Equal(t, 5*time.Second, c.StoreTimeout)
	assert.Equal(t, 15*time.Minute, c.ResetTokenTTL)
	assert.Equal(t, 15*time.Minute, c.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, c.RefreshTTL())
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.CORSOrigins)
	assert.Empty(t, c.DBHost)
	assert.True(t, c.IsDev())
}

func TestEnvHelpersFallBack(t *testing.T) {
	t.Setenv("X_INT", "nope")
	t.Setenv("X_DUR", "later")
	t.Setenv("X_BOOL", "maybe")

	assert.Equal(t, 3, envInt("X_INT", 3))
	assert.Equal(t, time.Minute, envDur("X_DUR", time.Minute))
	assert.True(t, envBool("X_BOOL", true))
}

func TestRateLimitNormalized(t *testing.T) {
	c := RateLimitConfig{Capacity: 0, RefillTokens: 0, RefillInterval: 0, TTL: time.Second}.normalized()

	assert.Equal(t, 1, c.Capacity)
	assert.Equal(t, 1, c.RefillTokens)
	assert.Equal(t, time.Second, c.RefillInterval)
	assert.Equal(t, 5*time.Second, c.TTL)
}

func TestLoadCacheConfigMethods(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")

	c := LoadCacheConfig()

	assert.True(t, c.Methods["GET"])
	assert.True(t, c.Methods["HEAD"])
	assert.False(t, c.Methods["POST"])
	assert.Equal(t, 30*time.Second, c.TTL)
}
