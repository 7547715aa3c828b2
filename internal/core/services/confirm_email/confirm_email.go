package confirmemail

import (
	"context"
	"errors"
	"onboarding/internal/core/domain/clock"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/token"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
)

type Input struct {
	Email c.Email
	Token token.Value
}

type Result struct {
	User user.User
}

type service struct {
	log                         logging.Logger
	userRepository              user.UserRepository
	confirmationTokenRepository user.ConfirmationTokenRepository
	clock                       clock.Clock
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	confirmationTokenRepository user.ConfirmationTokenRepository,
	clock clock.Clock,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if confirmationTokenRepository == nil {
		panic(e.NewNilArgumentError("confirmationTokenRepository"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	return &service{
		log:                         log,
		userRepository:              userRepository,
		confirmationTokenRepository: confirmationTokenRepository,
		clock:                       clock,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserNotFound) {
		s.log.Info(ctx, "User not found for email confirmation.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for email confirmation.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	tokens, err := s.confirmationTokenRepository.GetByUserID(ctx, u.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get confirmation tokens.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !user.FindValidConfirmationToken(tokens, input.Token, s.clock.Now()) {
		s.log.Info(ctx, "Confirmation token not found or expired.", logging.Entry("userId", u.ID))
		return result, user.ErrTokenNotFoundOrExpired
	}

	if u.EmailConfirmed {
		s.log.Info(ctx, "Email is already confirmed.", logging.Entry("userId", u.ID))
		return Result{User: u}, nil
	}

	confirmed, err := s.userRepository.Update(ctx, u.ID, user.UpdateUserInput{EmailConfirmed: c.Some(true)})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not confirm user email.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User email has been confirmed.", logging.Entry("userId", u.ID))
	return Result{User: confirmed}, nil
}
