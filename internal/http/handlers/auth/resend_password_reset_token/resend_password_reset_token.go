package resendpasswordresettoken

import (
	"encoding/json"
	"io"
	"net/http"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/services"
	resendpasswordresettoken "onboarding/internal/core/services/resend_password_reset_token"
	"onboarding/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resendpasswordresettoken.Input, resendpasswordresettoken.Result]
}

func New(
	service services.Service[resendpasswordresettoken.Input, resendpasswordresettoken.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
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

	res := services.Execute(
		r.Context(),
		h.service,
		resendpasswordresettoken.Input{Email: c.NewEmail(input.Email)},
	)
	if res.IsFailure() {
		response.RenderServiceError(rw, res.Err())
		return
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
