package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"onboarding/internal/core/domain/clock"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/logging"
	ratelimiter "onboarding/internal/core/domain/rate_limiter"
	"time"

	"github.com/go-redis/redis/v9"
)

type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	clock       clock.Clock
}

func NewRedis(redisClient *redis.Client, log logging.Logger, clock clock.Clock) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	return &Redis{redisClient: redisClient, log: log, clock: clock}
}

// windowKey names the fixed window that contains now.
func windowKey(key string, interval ratelimiter.Interval, now time.Time) (string, time.Duration) {
	d := interval.Duration()
	return fmt.Sprintf("rate-limit::%s::%d", key, now.Truncate(d).Unix()), d
}

// CheckLimit fails open: a Redis error allows the request. Callers check ctx
// for cancellation themselves.
func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	k, d := windowKey(key, limit.Interval, r.clock.Now())

	var hits *redis.IntCmd
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		hits = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, d)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.Allowed()
	}
	if err != nil {
		r.log.Error(
			ctx,
			"Could not check rate limit due to Redis client error.",
			logging.Entry("key", k),
			logging.Entry("err", err),
		)
		return ratelimiter.Allowed()
	}
	if hits.Val() > int64(limit.Value) {
		return ratelimiter.NotAllowed()
	}
	return ratelimiter.Allowed()
}
