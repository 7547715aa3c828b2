package requestpasswordreset

import (
	"encoding/json"
	"io"
	"net/http"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/services"
	requestpasswordreset "onboarding/internal/core/services/request_password_reset"
	"onboarding/internal/http/handlers/response"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const TestPasswordResetTokenHeader = "x-test-password-reset-token"

type Handler struct {
	service    services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	isTestMode bool
}

func New(
	service services.Service[requestpasswordreset.Input, requestpasswordreset.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, validation.Length(0, 512)),
	)
}

type Output struct {
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	issued, err := services.Execute(
		r.Context(),
		h.service,
		requestpasswordreset.Input{Email: c.NewEmail(input.Email)},
	).Unpack()
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	if h.isTestMode {
		rw.Header().Set(TestPasswordResetTokenHeader, string(issued.Token.Value))
	}
	response.Render(rw, Output{ExpiresAt: issued.Token.ExpiresAt}, http.StatusOK)
}
