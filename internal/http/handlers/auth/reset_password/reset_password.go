package resetpassword

import (
	"encoding/json"
	"io"
	"net/http"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/token"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
	resetpassword "onboarding/internal/core/services/reset_password"
	"onboarding/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Token, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Password, validation.Length(0, 256)),
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

	_, err := services.Execute(
		r.Context(),
		h.service,
		resetpassword.Input{
			Email:       c.NewEmail(input.Email),
			Token:       token.Value(input.Token),
			NewPassword: user.RawPassword(input.Password),
		},
	).Unpack()
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
