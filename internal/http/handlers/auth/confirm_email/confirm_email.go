package confirmemail

import (
	"encoding/json"
	"io"
	"net/http"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/result"
	"onboarding/internal/core/domain/token"
	"onboarding/internal/core/services"
	confirmemail "onboarding/internal/core/services/confirm_email"
	"onboarding/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[confirmemail.Input, confirmemail.Result]
}

func New(service services.Service[confirmemail.Input, confirmemail.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Token, validation.Required, validation.Length(0, 256)),
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
		confirmemail.Input{Email: c.NewEmail(input.Email), Token: token.Value(input.Token)},
	)
	render := result.Match(
		res,
		func(confirmed confirmemail.Result) func() {
			return func() {
				out := response.User{}
				out.FromDomainUser(confirmed.User)
				response.Render(rw, out, http.StatusOK)
			}
		},
		func(err error) func() {
			return func() { response.RenderServiceError(rw, err) }
		},
	)
	render()
}
