package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := New(5, time.Minute)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow(), "request %d should be allowed", i+1)
	}

	assert.False(t, limiter.Allow(), "request 6 should be denied")
}

func TestRateLimiter_Refill(t *testing.T) {
	limiter := New(1, 50*time.Millisecond)

	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	assert.Eventually(t, limiter.Allow, time.Second, 10*time.Millisecond)
}

func TestRateLimiter_Metrics(t *testing.T) {
	limiter := New(2, time.Minute)

	limiter.Allow()
	limiter.Allow()
	limiter.Allow()

	m := limiter.Metrics()
	assert.Equal(t, int64(3), m.TotalRequests)
	assert.Equal(t, int64(2), m.AllowedRequests)
	assert.Equal(t, int64(1), m.DeniedRequests)
}

func TestRateLimiter_Concurrent(t *testing.T) {
	limiter := New(50, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
	assert.Equal(t, int64(100), limiter.Metrics().TotalRequests)
}
