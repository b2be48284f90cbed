package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	limiter := NewInMemoryRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("ip-1"), "request %d should pass", i)
	}
	assert.False(t, limiter.Allow("ip-1"), "fourth request should be rejected")
}

func TestRateLimiterIsolatesKeys(t *testing.T) {
	limiter := NewInMemoryRateLimiter(1, time.Minute)
	assert.True(t, limiter.Allow("ip-1"))
	assert.False(t, limiter.Allow("ip-1"))
	assert.True(t, limiter.Allow("ip-2"))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	limiter := NewInMemoryRateLimiter(1, 20*time.Millisecond)
	assert.True(t, limiter.Allow("ip-1"))
	assert.False(t, limiter.Allow("ip-1"))
	time.Sleep(30 * time.Millisecond)
	assert.True(t, limiter.Allow("ip-1"), "old entries should expire out of the window")
}
