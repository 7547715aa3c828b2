package signup

import (
	"encoding/json"
	"io"
	"net/http"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/core/services"
	registeruser "onboarding/internal/core/services/register_user"
	"onboarding/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const TestConfirmationTokenHeader = "x-test-confirmation-token"

type Handler struct {
	service    services.Service[registeruser.Input, registeruser.Result]
	isTestMode bool
}

func New(
	service services.Service[registeruser.Input, registeruser.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	ID        *string `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Password  string  `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, is.UUID),
		validation.Field(&i.Email, validation.Length(0, 512)),
		validation.Field(&i.FirstName, validation.Length(0, 256)),
		validation.Field(&i.LastName, validation.Length(0, 256)),
		validation.Field(&i.Password, validation.Length(0, 256)),
	)
}

func (i Input) toService() registeruser.Input {
	id := c.None[user.ID]()
	if i.ID != nil && *i.ID != "" {
		id = c.Some(user.ID(*i.ID))
	}
	return registeruser.Input{
		ID:        id,
		Email:     c.NewEmail(i.Email),
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Password:  user.RawPassword(i.Password),
	}
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

	res := services.Execute(r.Context(), h.service, input.toService())
	if res.IsFailure() {
		response.RenderServiceError(rw, res.Err())
		return
	}

	registered := res.Value()
	if h.isTestMode {
		rw.Header().Set(TestConfirmationTokenHeader, string(registered.Token.Value))
	}
	out := response.User{}
	out.FromDomainUser(registered.User)
	response.Render(rw, out, http.StatusCreated)
}
