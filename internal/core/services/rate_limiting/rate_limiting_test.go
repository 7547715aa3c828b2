package ratelimiting

import (
	"context"
	"onboarding/internal/core/domain/logging"
	ratelimiter "onboarding/internal/core/domain/rate_limiter"
	"onboarding/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

type input struct {
	Value string
}

func (i input) GetRateLimitKey() string {
	return "test-rate-limiting-key::" + i.Value
}

type result struct{}

type stubService struct {
	WasCalled bool
}

func (s *stubService) Run(ctx context.Context, input input) (result result, err error) {
	s.WasCalled = true
	return result, nil
}

type testRateLimitingSuite struct {
	suite.Suite
	Logger      *logging.FakeLogger
	RateLimiter *ratelimiter.FakeRateLimiter
	Inner       *stubService
	Service     services.Service[input, result]
}

func (suite *testRateLimitingSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.RateLimiter = ratelimiter.NewFakeRateLimiter(false)
	suite.Inner = &stubService{}
	suite.Service = WithRateLimiting[input, result](
		suite.Logger,
		suite.RateLimiter,
		ratelimiter.Limit{Value: 10, Interval: ratelimiter.Hour},
		suite.Inner,
	)
}

func TestRateLimitingService(t *testing.T) {
	suite.Run(t, new(testRateLimitingSuite))
}

func (suite *testRateLimitingSuite) TestNotLimited() {
	suite.RateLimiter.IsAllowed = true
	_, err := suite.Service.Run(context.Background(), input{Value: "test"})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.Inner.WasCalled)
	assert.Equal([]string{"test-rate-limiting-key::test"}, suite.RateLimiter.Keys)
}

func (suite *testRateLimitingSuite) TestLimited() {
	suite.RateLimiter.IsAllowed = false
	_, err := suite.Service.Run(context.Background(), input{Value: "test"})

	assert := suite.Require()
	assert.ErrorIs(err, ratelimiter.ErrRateLimitExceeded)
	assert.False(suite.Inner.WasCalled)
	assert.Equal(1, suite.Logger.CountAt(logging.LevelWarning))
}

func (suite *testRateLimitingSuite) TestZeroLimitDisablesCheck() {
	service := WithRateLimiting[input, result](
		suite.Logger,
		suite.RateLimiter,
		ratelimiter.Limit{Value: 0, Interval: ratelimiter.Hour},
		suite.Inner,
	)
	_, err := service.Run(context.Background(), input{Value: "test"})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.Inner.WasCalled)
	assert.Empty(suite.RateLimiter.Keys)
}

func (suite *testRateLimitingSuite) TestCanceledContextIsNotRateLimited() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.Service.Run(ctx, input{Value: "test"})

	assert := suite.Require()
	assert.ErrorIs(err, context.Canceled)
	assert.NotErrorIs(err, ratelimiter.ErrRateLimitExceeded)
	assert.False(suite.Inner.WasCalled)
	assert.Equal(0, suite.Logger.CountAt(logging.LevelWarning))
}
