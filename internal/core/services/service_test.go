package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

type stubService struct {
	err error
}

func (s stubService) Run(ctx context.Context, input int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return input * 2, nil
}

func TestExecute(t *testing.T) {
	assert := require.New(t)
	ctx := context.Background()

	success := Execute[int, int](ctx, stubService{}, 21)
	assert.True(success.IsSuccess())
	assert.Equal(42, success.Value())

	failure := Execute[int, int](ctx, stubService{err: errTest}, 21)
	assert.True(failure.IsFailure())
	assert.ErrorIs(failure.Err(), errTest)
}
