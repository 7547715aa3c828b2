package resendconfirmationtoken

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
	return "resend-confirmation-token::" + string(i.Email)
}

type Result struct {
	Token token.Issued
}

type service struct {
	log                         logging.Logger
	userRepository              user.UserRepository
	confirmationTokenRepository user.ConfirmationTokenRepository
	sender                      user.ConfirmationTokenSender
	issuer                      *token.Issuer
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	confirmationTokenRepository user.ConfirmationTokenRepository,
	sender user.ConfirmationTokenSender,
	issuer *token.Issuer,
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
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if issuer == nil {
		panic(e.NewNilArgumentError("issuer"))
	}
	return &service{
		log:                         log,
		userRepository:              userRepository,
		confirmationTokenRepository: confirmationTokenRepository,
		sender:                      sender,
		issuer:                      issuer,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserNotFound) {
		s.log.Info(ctx, "User not found for confirmation token resending.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for confirmation token resending.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	if u.EmailConfirmed {
		s.log.Info(ctx, "User is already confirmed.", logging.Entry("userId", u.ID))
		return result, user.ErrUserAlreadyConfirmed
	}

	issued := s.issuer.Issue()
	err = s.confirmationTokenRepository.Save(ctx, user.ConfirmationToken{
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
			"Could not save confirmation token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = s.sender.SendConfirmationToken(ctx, u.Email, issued.Value)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send confirmation token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrSendConfirmationEmail.Wrap(err)
	}

	s.log.Info(ctx, "Confirmation token has been resent.", logging.Entry("userId", u.ID))
	return Result{Token: issued}, nil
}
