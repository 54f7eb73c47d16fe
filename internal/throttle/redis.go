// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package throttle

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
)

const keyPrefix = "throttle:"

// counter is the part of redis.Cmdable the throttle needs.
type counter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

// RedisThrottle counts accesses per identifier in fixed windows, so every
// server instance sees the same quota. Redis failures never throttle.
type RedisThrottle struct {
	client counter
	quota  int64
	window time.Duration
}

// NewRedisThrottle allows quota accesses per identifier in every window.
func NewRedisThrottle(client redis.Cmdable, quota int, window time.Duration) *RedisThrottle {
	return newRedisThrottle(client, quota, window)
}

func newRedisThrottle(client counter, quota int, window time.Duration) *RedisThrottle {
	if quota < 1 {
		quota = 1
	}
	return &RedisThrottle{client: client, quota: int64(quota), window: window}
}

func (t *RedisThrottle) ShouldBeThrottled(ctx context.Context, identifier string) bool {
	log := logger.FromContext(ctx)

	count, err := t.client.Get(ctx, keyPrefix+identifier).Int64()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		log.Err(err).Str("identifier", identifier).Msg("reading throttle counter failed")
		return false
	}

	if count >= t.quota {
		log.Warn().Str("identifier", identifier).Int64("count", count).Msg("rate limit exceeded")
		return true
	}
	return false
}

// Accessed increments the counter and starts its window in one MULTI/EXEC
// transaction. The expiry is only set on keys without one, so a key left
// without a window gets one on the next access.
func (t *RedisThrottle) Accessed(ctx context.Context, identifier string) {
	log := logger.FromContext(ctx)
	key := keyPrefix + identifier

	var incr *redis.IntCmd
	_, err := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, t.window)
		return nil
	})
	if err != nil {
		log.Err(err).Str("identifier", identifier).Msg("updating throttle counter failed")
		return
	}

	log.Debug().Str("identifier", identifier).Int64("count", incr.Val()).Msg("throttled access recorded")
}
