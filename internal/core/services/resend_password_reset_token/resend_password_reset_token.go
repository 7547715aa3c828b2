package resendpasswordresettoken

import (
	"context"
	"errors"
	"onboarding/internal/core/domain/clock"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "resend-password-reset-token::" + string(i.Email)
}

type Result struct{}

// New creates a service that delivers the stored reset token again without
// issuing a new one.
func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetTokenRepository user.ResetTokenRepository,
	sender user.ResetTokenSender,
	clock clock.Clock,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if resetTokenRepository == nil {
		panic(e.NewNilArgumentError("resetTokenRepository"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	return &service{
		log:                  log,
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		sender:               sender,
		clock:                clock,
	}
}

type service struct {
	log                  logging.Logger
	userRepository       user.UserRepository
	resetTokenRepository user.ResetTokenRepository
	sender               user.ResetTokenSender
	clock                clock.Clock
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserNotFound) {
		s.log.Info(ctx, "User not found for password reset token resending.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset token resending.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !u.EmailConfirmed {
		return result, user.ErrUserNotConfirmed
	}

	stored, err := s.resetTokenRepository.GetByUserID(ctx, u.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrTokenNotFoundOrExpired) {
		s.log.Info(ctx, "There is no password reset token to resend.", logging.Entry("userId", u.ID))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get password reset token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !stored.IsValidAt(s.clock.Now()) {
		s.log.Info(ctx, "Password reset token has expired.", logging.Entry("userId", u.ID))
		return result, user.ErrTokenNotFoundOrExpired
	}

	err = s.sender.SendPasswordResetToken(ctx, u.Email, stored.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not resend password reset token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrSendResetPasswordEmail.Wrap(err)
	}

	s.log.Info(ctx, "Password reset token has been resent.", logging.Entry("userId", u.ID))
	return result, nil
}
