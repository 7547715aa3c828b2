package services

import (
	"context"
	"onboarding/internal/core/domain/result"
)

type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}

// Execute runs the service and folds its output into a Result.
func Execute[T any, S any](ctx context.Context, service Service[T, S], input T) result.Result[S] {
	return result.Of(service.Run(ctx, input))
}
