package editpost

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	service "blogapi/internal/core/services/edit_post"
	"blogapi/internal/http/handlers/response"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
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
	PostID  int64  `json:"post_id"`
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
		validation.Field(&i.PostID, validation.Required, validation.Min(int64(1))),
		validation.Field(&i.Title, validation.Required, validation.Length(0, 255)),
		validation.Field(&i.Content, validation.Required),
	)
}

// ServeHTTP handles both PUT /posts with post_id in the body and PUT /posts/{postID}.
// The path parameter wins when both are given.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequestData(rw)
		return
	}
	if rawPostID := chi.URLParam(r, "postID"); rawPostID != "" {
		postID, err := strconv.ParseInt(rawPostID, 10, 64)
		if err != nil {
			response.RenderError(rw, "invalid post ID", http.StatusBadRequest)
			return
		}
		input.PostID = postID
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationError(rw, err)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			PostID:  post.ID(input.PostID),
			Title:   post.Title(input.Title),
			Content: post.Content(input.Content),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, post.ErrPostDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, post.ErrPostPermission):
			response.RenderError(rw, err.Error(), http.StatusForbidden)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	p := response.Post{}
	p.FromDomainPost(result.Post)
	response.Render(rw, Result{Message: "Post updated successfully", Post: p}, http.StatusOK)
}
