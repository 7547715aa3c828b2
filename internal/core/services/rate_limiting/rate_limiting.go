package ratelimiting

import (
	"context"
	"errors"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/logging"
	ratelimiter "onboarding/internal/core/domain/rate_limiter"
	"onboarding/internal/core/services"
)

// Keyed is implemented by service inputs that can be rate limited. Inputs of
// the onboarding services key on the email address.
type Keyed interface {
	GetRateLimitKey() string
}

type guarded[T Keyed, S any] struct {
	log     logging.Logger
	limiter ratelimiter.RateLimiter
	limit   ratelimiter.Limit
	inner   services.Service[T, S]
}

// WithRateLimiting rejects runs over limit with ErrRateLimitExceeded before
// they reach inner. A zero limit value disables the check. A canceled context
// is returned as is.
func WithRateLimiting[T Keyed, S any](
	log logging.Logger,
	limiter ratelimiter.RateLimiter,
	limit ratelimiter.Limit,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if limiter == nil {
		panic(e.NewNilArgumentError("limiter"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	if limit.Value == 0 {
		return inner
	}
	return &guarded[T, S]{log: log, limiter: limiter, limit: limit, inner: inner}
}

func (g *guarded[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	key := input.GetRateLimitKey()
	allowed := g.limiter.CheckLimit(ctx, key, g.limit).IsAllowed
	if err := ctx.Err(); errors.Is(err, context.Canceled) {
		return result, err
	}
	if allowed {
		return g.inner.Run(ctx, input)
	}

	g.log.Warning(
		ctx,
		"Rate limit exceeded.",
		logging.Entry("key", key),
		logging.Entry("limit", g.limit.Value),
		logging.Entry("interval", g.limit.Interval.Duration()),
	)
	return result, ratelimiter.ErrRateLimitExceeded
}
