package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	drl "onboarding/internal/core/domain/rate_limiter"
	"onboarding/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderServiceError(t *testing.T) {
	cases := []struct {
		id      string
		err     error
		status  int
		kind    string
		details string
	}{
		{"rate limit", drl.ErrRateLimitExceeded, http.StatusTooManyRequests, "", ""},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError, "", ""},
		{"send failure", user.ErrSendConfirmationEmail.Wrap(fmt.Errorf("ses")), http.StatusInternalServerError, "", ""},
		{"already exists", user.ErrUserAlreadyExists, http.StatusUnprocessableEntity, "user_already_exists", ""},
		{
			"wrapped in context",
			fmt.Errorf("register: %w", user.ErrEmailUnconfirmed),
			http.StatusUnprocessableEntity,
			"email_unconfirmed",
			"",
		},
		{
			"validation details",
			user.ErrPasswordInvalid.Wrap(fmt.Errorf("the length must be no less than 8")),
			http.StatusUnprocessableEntity,
			"password_invalid",
			"the length must be no less than 8",
		},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			rw := httptest.NewRecorder()
			RenderServiceError(rw, tc.err)

			require.Equal(t, tc.status, rw.Code)
			require.Equal(t, "application/json", rw.Header().Get("Content-Type"))

			res := errorResponse{}
			require.Nil(t, json.Unmarshal(rw.Body.Bytes(), &res))
			require.NotEmpty(t, res.Error)
			require.Equal(t, tc.kind, res.Kind)
			require.Equal(t, tc.details, res.Details)
		})
	}
}
