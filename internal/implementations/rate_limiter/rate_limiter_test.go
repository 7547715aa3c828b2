package ratelimiter

import (
	"context"
	"fmt"
	"onboarding/internal/core/domain/clock"
	"onboarding/internal/core/domain/logging"
	ratelimiter "onboarding/internal/core/domain/rate_limiter"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var NOW = time.Date(2020, 1, 1, 13, 45, 0, 0, time.UTC)

func TestWindowKey(t *testing.T) {
	assert := require.New(t)

	k, d := windowKey("signup::john@doe.com", ratelimiter.Hour, NOW)
	assert.Equal(time.Hour, d)
	assert.Equal(fmt.Sprintf("rate-limit::signup::john@doe.com::%d", NOW.Truncate(time.Hour).Unix()), k)

	sameHour, _ := windowKey("signup::john@doe.com", ratelimiter.Hour, NOW.Add(14*time.Minute))
	assert.Equal(k, sameHour)
	nextDay, _ := windowKey("signup::john@doe.com", ratelimiter.Hour, NOW.Add(24*time.Hour))
	assert.NotEqual(k, nextDay)

	k, d = windowKey("signup::john@doe.com", ratelimiter.Minute, NOW)
	assert.Equal(time.Minute, d)
	assert.Equal(fmt.Sprintf("rate-limit::signup::john@doe.com::%d", NOW.Unix()), k)
}

func TestCanceledContextIsAllowed(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()
	limiter := NewRedis(client, logging.NewFakeLogger(), clock.Func(func() time.Time { return NOW }))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := limiter.CheckLimit(ctx, "a", ratelimiter.Limit{Value: 1, Interval: ratelimiter.Hour})

	require.True(t, result.IsAllowed)
}

type redisSuite struct {
	suite.Suite
	client  *redis.Client
	limiter *Redis
}

func (suite *redisSuite) SetupTest() {
	opts, err := redis.ParseURL(os.Getenv("TEST_REDIS_URL"))
	suite.Require().Nil(err)
	suite.client = redis.NewClient(opts)
	suite.Require().Nil(suite.client.FlushDB(context.Background()).Err())
	suite.limiter = NewRedis(suite.client, logging.NewFakeLogger(), clock.Func(func() time.Time { return NOW }))
}

func (suite *redisSuite) TearDownTest() {
	suite.client.Close()
}

func TestRedisRateLimiter(t *testing.T) {
	if os.Getenv("TEST_REDIS_URL") == "" {
		t.Skip("TEST_REDIS_URL is not set")
	}
	suite.Run(t, new(redisSuite))
}

func (suite *redisSuite) TestLimitIsEnforcedPerKey() {
	ctx := context.Background()
	limit := ratelimiter.Limit{Value: 2, Interval: ratelimiter.Hour}
	assert := suite.Require()

	assert.True(suite.limiter.CheckLimit(ctx, "a", limit).IsAllowed)
	assert.True(suite.limiter.CheckLimit(ctx, "a", limit).IsAllowed)
	assert.False(suite.limiter.CheckLimit(ctx, "a", limit).IsAllowed)
	assert.True(suite.limiter.CheckLimit(ctx, "b", limit).IsAllowed)
}
