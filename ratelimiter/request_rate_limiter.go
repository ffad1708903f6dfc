package ratelimiter

import (
	"time"

	"github.com/pkg/errors"
)

// Bounds for JSON-RPC provider quotas.
const (
	MaxRequestsPerWindow = 1000
	MinWindow            = 10 * time.Millisecond
	MaxWindow            = time.Minute
)

type RateLimiter interface {
	RateLimit()
}

// RequestRateLimiter allows at most maxRequests calls to RateLimit within
// any window of the configured duration.
type RequestRateLimiter struct {
	guard  chan struct{}
	window time.Duration
}

func NewRequestRateLimiter(maxRequests int, window string) (RateLimiter, error) {
	if maxRequests < 1 || maxRequests > MaxRequestsPerWindow {
		return nil, errors.Errorf("rpc max requests must be between 1 and %d, got %d", MaxRequestsPerWindow, maxRequests)
	}

	duration, err := time.ParseDuration(window)
	if err != nil {
		return nil, errors.Wrap(err, "invalid rpc rate window")
	}

	if duration < MinWindow || duration > MaxWindow {
		return nil, errors.Errorf("rpc rate window must be between %s and %s, got %s", MinWindow, MaxWindow, duration)
	}

	return &RequestRateLimiter{
		guard:  make(chan struct{}, maxRequests),
		window: duration,
	}, nil
}

func (t *RequestRateLimiter) RateLimit() {
	t.guard <- struct{}{}

	time.AfterFunc(t.window, func() {
		<-t.guard
	})
}
