// Package result holds the two-variant outcome returned to callers of the
// onboarding operations: either a value or an error, never both.
package result

import "fmt"

type Result[T any] struct {
	value T
	err   error
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Failure[T any](err error) Result[T] {
	if err == nil {
		panic("result: failure requires a non-nil error")
	}
	return Result[T]{err: err}
}

// Of converts the conventional (value, error) pair into a Result.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value panics when called on a failure.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic(fmt.Sprintf("result: value of a failure: %v", r.err))
	}
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Unpack() (T, error) {
	return r.value, r.err
}

func Match[T any, R any](r Result[T], onSuccess func(T) R, onFailure func(error) R) R {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
