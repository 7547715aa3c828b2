package requestpasswordreset

import (
	"context"
	"errors"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/token"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "request-password-reset::" + string(i.Email)
}

type Result struct {
	Token token.Issued
}

type service struct {
	log                  logging.Logger
	userRepository       user.UserRepository
	resetTokenRepository user.ResetTokenRepository
	sender               user.ResetTokenSender
	issuer               *token.Issuer
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetTokenRepository user.ResetTokenRepository,
	sender user.ResetTokenSender,
	issuer *token.Issuer,
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
	if issuer == nil {
		panic(e.NewNilArgumentError("issuer"))
	}
	return &service{
		log:                  log,
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		sender:               sender,
		issuer:               issuer,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	status, err := user.CheckRegistrationStatus(ctx, s.userRepository, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not check registration status.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !status.IsRegistered {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("email", input.Email))
		return result, user.ErrUserNotFound
	}
	if !status.IsConfirmed {
		s.log.Info(ctx, "User is not confirmed, password reset is not allowed.", logging.Entry("email", input.Email))
		return result, user.ErrUserNotConfirmed
	}

	issued := s.issuer.Issue()

	// The token is bound to the user id, so the user is read again after
	// the status check. It may have disappeared in between.
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserNotFound) {
		s.log.Info(ctx, "User disappeared during password reset.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = s.resetTokenRepository.Save(ctx, user.ResetToken{
		UserID:    u.ID,
		Token:     issued.Value,
		ExpiresAt: issued.ExpiresAt,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not save password reset token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = s.sender.SendPasswordResetToken(ctx, u.Email, issued.Value)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrSendResetPasswordEmail.Wrap(err)
	}

	s.log.Info(ctx, "Password reset token has been sent.", logging.Entry("userId", u.ID))
	return Result{Token: issued}, nil
}
