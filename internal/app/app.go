package app

import (
	"fmt"
	"net/http"
	"onboarding/internal/app/deps"
	"onboarding/internal/app/services"
	router "onboarding/internal/http"
	confirmemail "onboarding/internal/http/handlers/auth/confirm_email"
	requestpasswordreset "onboarding/internal/http/handlers/auth/request_password_reset"
	resendconfirmationtoken "onboarding/internal/http/handlers/auth/resend_confirmation_token"
	resendpasswordresettoken "onboarding/internal/http/handlers/auth/resend_password_reset_token"
	resetpassword "onboarding/internal/http/handlers/auth/reset_password"
	signup "onboarding/internal/http/handlers/auth/sign_up"
	"time"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	handlers := router.Handlers{
		SignUp:                   signup.New(s.RegisterUser, isTestMode),
		ConfirmEmail:             confirmemail.New(s.ConfirmEmail),
		ResendConfirmationToken:  resendconfirmationtoken.New(s.ResendConfirmationToken, isTestMode),
		RequestPasswordReset:     requestpasswordreset.New(s.RequestPasswordReset, isTestMode),
		ResendPasswordResetToken: resendpasswordresettoken.New(s.ResendPasswordResetToken),
		ResetPassword:            resetpassword.New(s.ResetPassword),
	}
	if isTestMode && deps.Mailbox != nil {
		handlers.Mailbox = deps.Mailbox.Handler()
	}

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router.NewRouter(handlers, router.Options{
			AllowedOrigins: deps.Config.AllowedOrigins,
			WithSentry:     deps.Config.SentryDsn != "",
		}),
		Addr:              address,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
