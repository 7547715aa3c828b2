package resetpassword

import (
	"context"
	"net/http"
	"net/http/httptest"
	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/token"
	"onboarding/internal/core/domain/user"
	resetpassword "onboarding/internal/core/services/reset_password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *resetpassword.Input
}

func (s *stubService) Run(ctx context.Context, input resetpassword.Input) (resetpassword.Result, error) {
	s.input = &input
	return resetpassword.Result{}, s.err
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedInput  *resetpassword.Input
	}{
		{
			id:             "success",
			body:           `{"email":"john@doe.com","token":"abc","password":"N3w-Passw0rd"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &resetpassword.Input{
				Email:       c.Email("john@doe.com"),
				Token:       token.Value("abc"),
				NewPassword: user.RawPassword("N3w-Passw0rd"),
			},
		},
		{
			id:             "missing token",
			body:           `{"email":"john@doe.com","password":"N3w-Passw0rd"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid token",
			body:           `{"email":"john@doe.com","token":"abc","password":"N3w-Passw0rd"}`,
			serviceErr:     user.ErrTokenNotFoundOrExpired,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "weak password",
			body:           `{"email":"john@doe.com","token":"abc","password":"weak"}`,
			serviceErr:     user.ErrPasswordInvalid,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPut, "/auth/password_reset", strings.NewReader(testcase.body))
			if err != nil {
				t.Fatal(err)
			}

			service := &stubService{err: testcase.serviceErr}
			rr := httptest.NewRecorder()
			New(service).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.expectedInput != nil {
				assert.Equal(t, testcase.expectedInput, service.input)
			}
		})
	}
}
