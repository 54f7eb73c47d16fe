// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package throttle

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
)

// RateThrottle keeps one token bucket per identifier.
type RateThrottle struct {
	limit rate.Limit
	burst int

	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
}

// NewRateThrottle allows perSecond requests per identifier with bursts of
// up to burst requests.
func NewRateThrottle(perSecond float64, burst int) *RateThrottle {
	if burst < 1 {
		burst = 1
	}
	return &RateThrottle{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (t *RateThrottle) ShouldBeThrottled(ctx context.Context, identifier string) bool {
	throttled := t.limiter(identifier).Tokens() < 1
	if throttled {
		logger.FromContext(ctx).Warn().Str("identifier", identifier).Msg("rate limit exceeded")
	}
	return throttled
}

func (t *RateThrottle) Accessed(_ context.Context, identifier string) {
	t.limiter(identifier).Allow()
}

func (t *RateThrottle) limiter(identifier string) *rate.Limiter {
	t.mu.RLock()
	limiter, ok := t.limiters[identifier]
	t.mu.RUnlock()
	if ok {
		return limiter
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if limiter, ok := t.limiters[identifier]; ok {
		return limiter
	}
	limiter = rate.NewLimiter(t.limit, t.burst)
	t.limiters[identifier] = limiter
	return limiter
}
