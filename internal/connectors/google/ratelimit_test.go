package google

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsBurst(t *testing.T) {
	r := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 3})

	assert.True(t, r.Allow())
	assert.True(t, r.Allow())
	assert.True(t, r.Allow())
	assert.False(t, r.Allow(), "burst exhausted")
}

func TestRateLimiter_BackoffWindowBlocksRequests(t *testing.T) {
	r := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})

	require.True(t, r.Allow())
	r.RecordRateLimitError(time.Minute)
	assert.False(t, r.Allow(), "requests blocked during the backoff window")
}

func TestRateLimiter_WaitHonoursCancellation(t *testing.T) {
	r := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 1})
	r.RecordRateLimitError(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := r.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_ZeroConfigFallsBackToDefault(t *testing.T) {
	r := NewRateLimiterWithConfig(RateLimitConfig{})
	assert.True(t, r.Allow())
}
