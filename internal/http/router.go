package http

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	SignUp                   http.Handler
	ConfirmEmail             http.Handler
	ResendConfirmationToken  http.Handler
	RequestPasswordReset     http.Handler
	ResendPasswordResetToken http.Handler
	ResetPassword            http.Handler

	// Mailbox is mounted only when set.
	Mailbox http.Handler
}

type Options struct {
	AllowedOrigins []string
	WithSentry     bool
}

func NewRouter(h Handlers, opts Options) http.Handler {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", h.SignUp)
	authRouter.Method(http.MethodPost, "/confirm", h.ConfirmEmail)
	authRouter.Method(http.MethodPost, "/confirm/resend", h.ResendConfirmationToken)
	authRouter.Method(http.MethodPost, "/password_reset/token", h.RequestPasswordReset)
	authRouter.Method(http.MethodPost, "/password_reset/token/resend", h.ResendPasswordResetToken)
	authRouter.Method(http.MethodPut, "/password_reset", h.ResetPassword)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"x-test-confirmation-token", "x-test-password-reset-token"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	if h.Mailbox != nil {
		router.Method(http.MethodGet, "/dev/mailbox", h.Mailbox)
	}

	if opts.WithSentry {
		return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(router)
	}
	return router
}
