package services_test

import (
	"context"
	"onboarding/internal/core/domain/clock"
	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/token"
	uow "onboarding/internal/core/domain/unit_of_work"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
	confirmemail "onboarding/internal/core/services/confirm_email"
	registeruser "onboarding/internal/core/services/register_user"
	requestpasswordreset "onboarding/internal/core/services/request_password_reset"
	resendconfirmationtoken "onboarding/internal/core/services/resend_confirmation_token"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const EMAIL = c.Email("john@doe.com")

var NOW = time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)

type onboardingSuite struct {
	suite.Suite
	Clock              *clock.FakeClock
	UnitOfWork         *uow.FakeUnitOfWork
	ConfirmationSender *user.FakeConfirmationTokenSender
	ResetSender        *user.FakeResetTokenSender
	Register           services.Service[registeruser.Input, registeruser.Result]
	Confirm            services.Service[confirmemail.Input, confirmemail.Result]
	Resend             services.Service[resendconfirmationtoken.Input, resendconfirmationtoken.Result]
	RequestReset       services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
}

func (suite *onboardingSuite) SetupTest() {
	log := logging.NewFakeLogger()
	suite.Clock = clock.NewFakeClock(NOW)
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.ConfirmationSender = user.NewFakeConfirmationTokenSender()
	suite.ResetSender = user.NewFakeResetTokenSender()
	users := suite.UnitOfWork.Context.UserRepository
	confirmationTokens := suite.UnitOfWork.Context.ConfirmationTokenRepository
	resetTokens := suite.UnitOfWork.Context.ResetTokenRepository

	suite.Register = registeruser.NewWithConfirmationTokenSending(
		log,
		suite.ConfirmationSender,
		registeruser.New(
			log,
			suite.UnitOfWork,
			user.NewFakePasswordHasher(),
			user.NewFakeIdentityGenerator("1"),
			token.NewConfirmationIssuer(token.NewFakeGenerator("abc"), nil, suite.Clock),
			suite.Clock,
		),
	)
	suite.Confirm = confirmemail.New(log, users, confirmationTokens, suite.Clock)
	suite.Resend = resendconfirmationtoken.New(
		log,
		users,
		confirmationTokens,
		suite.ConfirmationSender,
		token.NewConfirmationIssuer(token.NewFakeGenerator("def"), nil, suite.Clock),
	)
	suite.RequestReset = requestpasswordreset.New(
		log,
		users,
		resetTokens,
		suite.ResetSender,
		token.NewResetIssuer(token.NewFakeGenerator("reset"), nil, suite.Clock),
	)
}

func TestOnboarding(t *testing.T) {
	suite.Run(t, new(onboardingSuite))
}

func (suite *onboardingSuite) register() error {
	_, err := suite.Register.Run(context.Background(), registeruser.Input{
		Email:     EMAIL,
		FirstName: "John",
		LastName:  "Doe",
		Password:  "SecurePass123!",
	})
	return err
}

func (suite *onboardingSuite) TestRegisterConfirmAndRequestReset() {
	ctx := context.Background()
	assert := suite.Require()

	assert.Nil(suite.register())
	assert.Equal(1, suite.ConfirmationSender.SentCount())
	sent := suite.ConfirmationSender.LastSent()
	assert.Equal(user.SentToken{Email: EMAIL, Token: "abc"}, sent)

	assert.ErrorIs(suite.register(), user.ErrEmailUnconfirmed)

	_, err := suite.RequestReset.Run(ctx, requestpasswordreset.Input{Email: EMAIL})
	assert.ErrorIs(err, user.ErrUserNotConfirmed)

	suite.Clock.Advance(time.Hour)
	confirmed := services.Execute(ctx, suite.Confirm, confirmemail.Input{Email: EMAIL, Token: sent.Token})
	assert.True(confirmed.IsSuccess())

	u, err := suite.UnitOfWork.Context.UserRepository.GetByEmail(ctx, EMAIL)
	assert.Nil(err)
	assert.True(u.EmailConfirmed)

	assert.ErrorIs(suite.register(), user.ErrUserAlreadyExists)

	_, err = suite.Resend.Run(ctx, resendconfirmationtoken.Input{Email: EMAIL})
	assert.ErrorIs(err, user.ErrUserAlreadyConfirmed)
	assert.Equal(1, suite.ConfirmationSender.SentCount())

	reset := services.Execute(ctx, suite.RequestReset, requestpasswordreset.Input{Email: EMAIL})
	assert.True(reset.IsSuccess())
	assert.True(reset.Value().Token.ExpiresAt.Equal(NOW.Add(time.Hour + 10*time.Minute)))
	assert.Equal(user.SentToken{Email: EMAIL, Token: "reset"}, suite.ResetSender.LastSent())
}

func (suite *onboardingSuite) TestOldTokenIsValidAfterResend() {
	ctx := context.Background()
	assert := suite.Require()

	assert.Nil(suite.register())
	_, err := suite.Resend.Run(ctx, resendconfirmationtoken.Input{Email: EMAIL})
	assert.Nil(err)
	assert.Equal(2, suite.ConfirmationSender.SentCount())

	_, err = suite.Confirm.Run(ctx, confirmemail.Input{Email: EMAIL, Token: "abc"})
	assert.Nil(err)
}

func (suite *onboardingSuite) TestExpiredConfirmationToken() {
	ctx := context.Background()
	assert := suite.Require()

	assert.Nil(suite.register())
	suite.Clock.Advance(25 * time.Hour)

	_, err := suite.Confirm.Run(ctx, confirmemail.Input{Email: EMAIL, Token: "abc"})
	assert.ErrorIs(err, user.ErrTokenNotFoundOrExpired)
}
