package deletepost

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	service "blogapi/internal/core/services/delete_post"
	"blogapi/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawPostID := chi.URLParam(r, "postID")
	postID, err := strconv.ParseInt(rawPostID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid post ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{PostID: post.ID(postID)})
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

	response.RenderMessage(rw, "Post deleted successfully", http.StatusOK)
}
