// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package throttle

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/resource"
)

// New picks the throttle for the API settings: none when the rate is zero,
// the redis counter when an address is set and the in-process buckets
// otherwise. The returned close function releases the redis client.
func New(ctx context.Context, cfg config.API, log *logger.Logger) (resource.Throttle, func() error, error) {
	noop := func() error { return nil }

	if cfg.ThrottleRate <= 0 {
		log.Info().Msg("throttling disabled")
		return resource.NoThrottle{}, noop, nil
	}

	if cfg.RedisAddress == "" {
		log.Info().Float64("rate", cfg.ThrottleRate).Int("burst", cfg.ThrottleBurst).Msg("using in-memory throttle")
		return NewRateThrottle(cfg.ThrottleRate, cfg.ThrottleBurst), noop, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, noop, fmt.Errorf("error connecting to redis: %w", err)
	}

	window := windowFor(cfg.ThrottleRate, cfg.ThrottleBurst)
	log.Info().Str("address", cfg.RedisAddress).Dur("window", window).Msg("using redis throttle")
	return NewRedisThrottle(client, cfg.ThrottleBurst, window), client.Close, nil
}

// windowFor is the time in which burst requests are allowed at rate per
// second, rounded up to whole seconds.
func windowFor(perSecond float64, burst int) time.Duration {
	if burst < 1 {
		burst = 1
	}
	seconds := math.Ceil(float64(burst) / perSecond)
	return time.Duration(seconds) * time.Second
}
