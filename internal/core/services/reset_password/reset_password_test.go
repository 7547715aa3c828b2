package resetpassword

import (
	"context"
	"onboarding/internal/core/domain/clock"
	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/token"
	uow "onboarding/internal/core/domain/unit_of_work"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	USER_ID      = user.ID("1")
	EMAIL        = c.Email("john@doe.com")
	RESET_TOKEN  = "reset"
	NEW_PASSWORD = user.RawPassword("NewSecurePass456?")
	OLD_HASH     = user.PasswordHash("old-hash")
)

var NOW = time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger               *logging.FakeLogger
	UnitOfWork           *uow.FakeUnitOfWork
	UserRepository       *user.FakeUserRepository
	ResetTokenRepository *user.FakeResetTokenRepository
	PasswordHasher       *user.FakePasswordHasher
	Clock                *clock.FakeClock
	Service              services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.UserRepository = suite.UnitOfWork.Context.UserRepository
	suite.ResetTokenRepository = suite.UnitOfWork.Context.ResetTokenRepository
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Clock = clock.NewFakeClock(NOW)
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		suite.Clock,
	)

	ctx := context.Background()
	_, err := suite.UserRepository.Create(ctx, user.CreateUserInput{
		ID:           USER_ID,
		Email:        EMAIL,
		PasswordHash: OLD_HASH,
	})
	suite.Require().Nil(err)
	err = suite.ResetTokenRepository.Save(ctx, user.ResetToken{
		UserID:    USER_ID,
		Token:     RESET_TOKEN,
		ExpiresAt: NOW.Add(10 * time.Minute),
	})
	suite.Require().Nil(err)
}

func TestResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) passwordHash() user.PasswordHash {
	u, err := suite.UserRepository.GetByID(context.Background(), USER_ID)
	suite.Require().Nil(err)
	return u.PasswordHash
}

func (suite *testSuite) TestSuccess() {
	_, err := suite.Service.Run(context.Background(), Input{
		Email:       EMAIL,
		Token:       RESET_TOKEN,
		NewPassword: NEW_PASSWORD,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.PasswordHasher.ValidatePassword(NEW_PASSWORD, suite.passwordHash()))
	assert.Empty(suite.ResetTokenRepository.Tokens)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestTokenDeleteFailureKeepsPassword() {
	suite.ResetTokenRepository.ReturnDeleteError = true
	ctx := context.Background()
	input := Input{Email: EMAIL, Token: RESET_TOKEN, NewPassword: NEW_PASSWORD}

	_, first := suite.Service.Run(ctx, input)
	_, second := suite.Service.Run(ctx, input)

	assert := suite.Require()
	assert.Error(first)
	assert.Error(second)
	assert.Equal(OLD_HASH, suite.passwordHash())
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
}

func (suite *testSuite) TestBeginFailure() {
	suite.UnitOfWork.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{
		Email:       EMAIL,
		Token:       RESET_TOKEN,
		NewPassword: NEW_PASSWORD,
	})

	assert := suite.Require()
	assert.ErrorIs(err, uow.ErrFakeBegin)
	assert.Equal(OLD_HASH, suite.passwordHash())
}

func (suite *testSuite) TestTokenIsSingleUse() {
	ctx := context.Background()
	input := Input{Email: EMAIL, Token: RESET_TOKEN, NewPassword: NEW_PASSWORD}
	_, err := suite.Service.Run(ctx, input)
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, input)

	suite.Require().ErrorIs(err, user.ErrTokenNotFoundOrExpired)
}

func (suite *testSuite) TestInvalidToken() {
	cases := []struct {
		id      string
		token   string
		advance time.Duration
	}{
		{"wrong value", "wrong", 0},
		{"expired", RESET_TOKEN, 10 * time.Minute},
	}
	for _, tc := range cases {
		suite.Run(tc.id, func() {
			suite.SetupTest()
			suite.Clock.Advance(tc.advance)

			_, err := suite.Service.Run(context.Background(), Input{
				Email:       EMAIL,
				Token:       token.Value(tc.token),
				NewPassword: NEW_PASSWORD,
			})

			assert := suite.Require()
			assert.ErrorIs(err, user.ErrTokenNotFoundOrExpired)
			assert.Equal(OLD_HASH, suite.passwordHash())
		})
	}
}

func (suite *testSuite) TestWeakPassword() {
	_, err := suite.Service.Run(context.Background(), Input{
		Email:       EMAIL,
		Token:       RESET_TOKEN,
		NewPassword: "weak",
	})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrPasswordInvalid)
	assert.Equal(OLD_HASH, suite.passwordHash())
	assert.Len(suite.ResetTokenRepository.Tokens, 1)
}

func (suite *testSuite) TestUserNotFound() {
	_, err := suite.Service.Run(context.Background(), Input{
		Email:       "jane@doe.com",
		Token:       RESET_TOKEN,
		NewPassword: NEW_PASSWORD,
	})

	suite.Require().ErrorIs(err, user.ErrUserNotFound)
}
