package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_EmptyURL_IsNoop(t *testing.T) {
	limiter, err := NewRateLimiter("")
	require.NoError(t, err)

	assert.False(t, limiter.Available())

	// sin backend siempre permite
	ok, err := limiter.Allow(context.Background(), "login:a@b.com", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	limiter.Reset(context.Background(), "login:a@b.com")
	assert.NoError(t, limiter.Close())
}

func TestNewRateLimiter_BadURL(t *testing.T) {
	_, err := NewRateLimiter("not-a-redis-url")
	assert.Error(t, err)
}
