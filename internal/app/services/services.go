package services

import (
	"onboarding/internal/app/deps"
	drl "onboarding/internal/core/domain/rate_limiter"
	"onboarding/internal/core/services"
	confirmemail "onboarding/internal/core/services/confirm_email"
	ratelimiting "onboarding/internal/core/services/rate_limiting"
	registeruser "onboarding/internal/core/services/register_user"
	requestpasswordreset "onboarding/internal/core/services/request_password_reset"
	resendconfirmationtoken "onboarding/internal/core/services/resend_confirmation_token"
	resendpasswordresettoken "onboarding/internal/core/services/resend_password_reset_token"
	resetpassword "onboarding/internal/core/services/reset_password"
	"onboarding/internal/implementations/metrics"
)

type Services struct {
	RegisterUser             services.Service[registeruser.Input, registeruser.Result]
	ConfirmEmail             services.Service[confirmemail.Input, confirmemail.Result]
	ResendConfirmationToken  services.Service[resendconfirmationtoken.Input, resendconfirmationtoken.Result]
	RequestPasswordReset     services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	ResendPasswordResetToken services.Service[resendpasswordresettoken.Input, resendpasswordresettoken.Result]
	ResetPassword            services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.RegisterUser = metrics.WithMetrics(
		"register_user",
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: deps.Config.SignUpLimitPerHour},
			registeruser.NewWithConfirmationTokenSending(
				deps.Logger,
				deps.ConfirmationTokenSender,
				registeruser.New(
					deps.Logger,
					deps.UnitOfWork,
					deps.PasswordHasher,
					deps.IdentityGenerator,
					deps.ConfirmationTokenIssuer,
					deps.Clock,
				),
			),
		),
	)
	s.ConfirmEmail = metrics.WithMetrics(
		"confirm_email",
		confirmemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.ConfirmationTokenRepository,
			deps.Clock,
		),
	)
	s.ResendConfirmationToken = metrics.WithMetrics(
		"resend_confirmation_token",
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: deps.Config.ConfirmationResendLimitPerHour},
			resendconfirmationtoken.New(
				deps.Logger,
				deps.UserRepository,
				deps.ConfirmationTokenRepository,
				deps.ConfirmationTokenSender,
				deps.ConfirmationTokenIssuer,
			),
		),
	)
	s.RequestPasswordReset = metrics.WithMetrics(
		"request_password_reset",
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: deps.Config.PasswordResetLimitPerHour},
			requestpasswordreset.New(
				deps.Logger,
				deps.UserRepository,
				deps.ResetTokenRepository,
				deps.ResetTokenSender,
				deps.ResetTokenIssuer,
			),
		),
	)
	s.ResendPasswordResetToken = metrics.WithMetrics(
		"resend_password_reset_token",
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: deps.Config.PasswordResetLimitPerHour},
			resendpasswordresettoken.New(
				deps.Logger,
				deps.UserRepository,
				deps.ResetTokenRepository,
				deps.ResetTokenSender,
				deps.Clock,
			),
		),
	)
	s.ResetPassword = metrics.WithMetrics(
		"reset_password",
		resetpassword.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.Clock,
		),
	)

	return s
}
