package response

import (
	"encoding/json"
	"errors"
	"net/http"
	e "onboarding/internal/core/domain/errors"
	drl "onboarding/internal/core/domain/rate_limiter"
)

type errorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

// RenderServiceError maps an error returned by a service to a response.
// Business rejections are rendered with their kind so clients can branch on it.
func RenderServiceError(rw http.ResponseWriter, err error) {
	if errors.Is(err, drl.ErrRateLimitExceeded) {
		RenderRateLimitExceeded(rw)
		return
	}

	var domainErr *e.DomainError
	if !errors.As(err, &domainErr) {
		RenderInternalError(rw)
		return
	}

	switch domainErr.Kind {
	case e.KindUnknown, e.KindSendConfirmationEmail, e.KindSendResetPasswordEmail:
		RenderInternalError(rw)
	case e.KindEmailInvalid, e.KindPasswordInvalid, e.KindFirstNameInvalid, e.KindLastNameInvalid:
		res := errorResponse{Error: domainErr.Msg, Kind: domainErr.Kind.String()}
		if domainErr.Cause != nil {
			res.Details = domainErr.Cause.Error()
		}
		Render(rw, res, http.StatusUnprocessableEntity)
	default:
		Render(
			rw,
			errorResponse{Error: domainErr.Msg, Kind: domainErr.Kind.String()},
			http.StatusUnprocessableEntity,
		)
	}
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
