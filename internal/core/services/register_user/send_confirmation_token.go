package registeruser

import (
	"context"
	"errors"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
)

type serviceWithConfirmationTokenSending struct {
	log    logging.Logger
	sender user.ConfirmationTokenSender
	inner  services.Service[Input, Result]
}

// NewWithConfirmationTokenSending sends the confirmation token once the
// inner service has committed the user. A failed delivery does not undo the
// registration.
func NewWithConfirmationTokenSending(
	log logging.Logger,
	sender user.ConfirmationTokenSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithConfirmationTokenSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithConfirmationTokenSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending confirmation token.", logging.Entry("err", err))
		return result, err
	}

	err = s.sender.SendConfirmationToken(ctx, result.User.Email, result.Token.Value)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send confirmation token.",
			logging.Entry("userId", result.User.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrSendConfirmationEmail.Wrap(err)
	}

	s.log.Info(
		ctx,
		"Confirmation token has been sent to the user.",
		logging.Entry("userId", result.User.ID),
	)
	return result, nil
}
