package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiterCountsPerKey(t *testing.T) {
	limiter := &memoryLimiter{
		windows: make(map[string]*memoryWindow),
		max:     2,
		window:  time.Minute,
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.False(t, allowed)

	// Another client has its own counter
	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiterWindowsExpireIndependently(t *testing.T) {
	limiter := &memoryLimiter{
		windows: make(map[string]*memoryWindow),
		max:     1,
		window:  20 * time.Millisecond,
	}

	ctx := context.Background()
	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.True(t, allowed)

	// A client arriving later keeps its full window even after the first
	// client's window has expired
	time.Sleep(15 * time.Millisecond)
	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	assert.NoError(t, err)
	assert.True(t, allowed)

	time.Sleep(10 * time.Millisecond)

	// First client's window is over, second client's is not
	allowed, err = limiter.Allow(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	assert.NoError(t, err)
	assert.False(t, allowed)
}
