package createpost

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	service "blogapi/internal/core/services/create_post"
	"blogapi/internal/http/handlers/response"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goccy/go-json"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Result struct {
	Message string        `json:"message"`
	Post    response.Post `json:"post"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(0, 255)),
		validation.Field(&i.Content, validation.Required),
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

	result, err := h.service.Run(
		r.Context(),
		service.Input{Title: post.Title(input.Title), Content: post.Content(input.Content)},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	p := response.Post{}
	p.FromDomainPost(result.Post)
	response.Render(rw, Result{Message: "Post created successfully", Post: p}, http.StatusCreated)
}
