package confirmemail

import (
	"context"
	"onboarding/internal/core/domain/clock"
	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	USER_ID = user.ID("1")
	EMAIL   = c.Email("john@doe.com")
	TOKEN   = "abc"
)

var NOW = time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger                      *logging.FakeLogger
	UserRepository              *user.FakeUserRepository
	ConfirmationTokenRepository *user.FakeConfirmationTokenRepository
	Clock                       *clock.FakeClock
	Service                     services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.ConfirmationTokenRepository = user.NewFakeConfirmationTokenRepository()
	suite.Clock = clock.NewFakeClock(NOW)
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.ConfirmationTokenRepository,
		suite.Clock,
	)

	ctx := context.Background()
	_, err := suite.UserRepository.Create(ctx, user.CreateUserInput{
		ID:        USER_ID,
		Email:     EMAIL,
		FirstName: "John",
		LastName:  "Doe",
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)
	err = suite.ConfirmationTokenRepository.Save(ctx, user.ConfirmationToken{
		UserID:    USER_ID,
		Token:     TOKEN,
		ExpiresAt: NOW.Add(24 * time.Hour),
	})
	suite.Require().Nil(err)
}

func TestConfirmEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) getUser() user.User {
	u, err := suite.UserRepository.GetByID(context.Background(), USER_ID)
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestSuccess() {
	suite.Clock.Advance(time.Hour)

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Token: TOKEN})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(result.User.EmailConfirmed)
	assert.True(suite.getUser().EmailConfirmed)
}

func (suite *testSuite) TestUserNotFound() {
	_, err := suite.Service.Run(context.Background(), Input{Email: "jane@doe.com", Token: TOKEN})

	suite.Require().ErrorIs(err, user.ErrUserNotFound)
}

func (suite *testSuite) TestWrongToken() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Token: "wrong"})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrTokenNotFoundOrExpired)
	assert.False(suite.getUser().EmailConfirmed)
}

func (suite *testSuite) TestExpiredToken() {
	for _, d := range []time.Duration{24 * time.Hour, 25 * time.Hour} {
		suite.Clock.Set(NOW.Add(d))

		_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Token: TOKEN})

		assert := suite.Require()
		assert.ErrorIs(err, user.ErrTokenNotFoundOrExpired)
		assert.False(suite.getUser().EmailConfirmed)
	}
}

func (suite *testSuite) TestTokenOfAnotherUserIsRejected() {
	ctx := context.Background()
	_, err := suite.UserRepository.Create(ctx, user.CreateUserInput{ID: "2", Email: "jane@doe.com"})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{Email: "jane@doe.com", Token: TOKEN})

	suite.Require().ErrorIs(err, user.ErrTokenNotFoundOrExpired)
}

func (suite *testSuite) TestAnyLiveTokenIsAccepted() {
	ctx := context.Background()
	err := suite.ConfirmationTokenRepository.Save(ctx, user.ConfirmationToken{
		UserID:    USER_ID,
		Token:     "newer",
		ExpiresAt: NOW.Add(48 * time.Hour),
	})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{Email: EMAIL, Token: TOKEN})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.getUser().EmailConfirmed)
}

func (suite *testSuite) TestConfirmingTwiceSucceeds() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Token: TOKEN})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(ctx, Input{Email: EMAIL, Token: TOKEN})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(result.User.EmailConfirmed)
	assert.Len(suite.ConfirmationTokenRepository.Tokens, 1)
}

func (suite *testSuite) TestRepositoryError() {
	suite.ConfirmationTokenRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Token: TOKEN})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(1, suite.Logger.CountAt(logging.LevelError))
}
