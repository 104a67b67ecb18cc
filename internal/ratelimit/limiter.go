// Package ratelimit provides the optional local request limiter.
package ratelimit

import (
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter is a token bucket that refills requests tokens per period.
// It never blocks: a call either gets a token or is denied.
type RateLimiter struct {
	limiter *rate.Limiter
	metrics Metrics
}

// Metrics tracks statistics about rate limiter usage.
type Metrics struct {
	totalRequests   atomic.Int64
	allowedRequests atomic.Int64
	deniedRequests  atomic.Int64
}

// New creates a RateLimiter allowing requests per period, with a burst of requests.
func New(requests int, period time.Duration) *RateLimiter {
	rps := float64(requests) / period.Seconds()
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), requests),
	}
}

// Allow reports whether a request may proceed now and consumes a token if so.
func (r *RateLimiter) Allow() bool {
	r.metrics.totalRequests.Add(1)
	if r.limiter.Allow() {
		r.metrics.allowedRequests.Add(1)
		return true
	}
	r.metrics.deniedRequests.Add(1)
	return false
}

// Metrics returns a snapshot of the current rate limiter statistics.
func (r *RateLimiter) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		TotalRequests:   r.metrics.totalRequests.Load(),
		AllowedRequests: r.metrics.allowedRequests.Load(),
		DeniedRequests:  r.metrics.deniedRequests.Load(),
	}
}

// MetricsSnapshot is a point-in-time capture of rate limiter statistics.
type MetricsSnapshot struct {
	TotalRequests   int64 `json:"total_requests"`
	AllowedRequests int64 `json:"allowed_requests"`
	DeniedRequests  int64 `json:"denied_requests"`
}
