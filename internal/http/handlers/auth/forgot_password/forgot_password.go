package forgotpassword

import (
	c "blogapi/internal/core/domain/common"
	e "blogapi/internal/core/domain/errors"
	ratelimiter "blogapi/internal/core/domain/rate_limiter"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	service "blogapi/internal/core/services/request_password_reset"
	"blogapi/internal/http/handlers/response"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goccy/go-json"
)

const MESSAGE_SENT = "We have emailed your password reset token."

type Handler struct {
	service             services.Service[service.Input, service.Result]
	concealUnknownEmail bool
}

// New creates the forgot-password handler. When concealUnknownEmail is set an
// unregistered address gets the same response as a registered one.
func New(
	service services.Service[service.Input, service.Result],
	concealUnknownEmail bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, concealUnknownEmail: concealUnknownEmail}
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
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequestData(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationError(rw, err)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{Email: c.NewEmail(input.Email)},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, user.ErrUserDoesNotExist):
			if h.concealUnknownEmail {
				response.RenderMessage(rw, MESSAGE_SENT, http.StatusOK)
			} else {
				response.RenderError(rw, err.Error(), http.StatusNotFound)
			}
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.RenderMessage(rw, MESSAGE_SENT, http.StatusOK)
}
