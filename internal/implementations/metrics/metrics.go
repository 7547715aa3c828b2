package metrics

import (
	"context"
	"errors"
	e "onboarding/internal/core/domain/errors"
	ratelimiter "onboarding/internal/core/domain/rate_limiter"
	"onboarding/internal/core/services"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	serviceRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_service_runs_total",
			Help: "Total service runs by service and outcome",
		},
		[]string{"service", "outcome"},
	)
	serviceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "onboarding_service_duration_seconds",
			Help:    "Service run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)
)

const (
	OutcomeSuccess     = "success"
	OutcomeCanceled    = "canceled"
	OutcomeRateLimited = "rate_limited"
	OutcomeError       = "error"
)

// Outcome maps a service error to the label value used by the counters.
// Domain errors are labelled with their kind.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		return OutcomeRateLimited
	}
	if kind := e.KindOf(err); kind != e.KindUnknown {
		return kind.String()
	}
	return OutcomeError
}

type serviceWithMetrics[T any, S any] struct {
	name  string
	inner services.Service[T, S]
}

func WithMetrics[T any, S any](name string, inner services.Service[T, S]) services.Service[T, S] {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithMetrics[T, S]{name: name, inner: inner}
}

func (s *serviceWithMetrics[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	start := time.Now()
	result, err = s.inner.Run(ctx, input)
	serviceDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())
	serviceRuns.WithLabelValues(s.name, Outcome(err)).Inc()
	return result, err
}
