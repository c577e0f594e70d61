package getpost

import (
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	service "blogapi/internal/core/services/get_post"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err error
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	result.Post = post.Post{
		ID:        input.PostID,
		AuthorID:  1,
		Title:     "Hello",
		Content:   "World",
		CreatedAt: time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	return result, nil
}

func TestGetPostHandler(t *testing.T) {
	cases := []struct {
		id             string
		url            string
		serviceErr     error
		expectedStatus int
	}{
		{id: "success", url: "/posts/1", expectedStatus: http.StatusOK},
		{id: "not found", url: "/posts/1", serviceErr: post.ErrPostDoesNotExist, expectedStatus: http.StatusNotFound},
		{id: "invalid id", url: "/posts/a", expectedStatus: http.StatusBadRequest},
		{
			id:             "unauthenticated",
			url:            "/posts/1",
			serviceErr:     user.ErrSessionDoesNotExist,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			router := chi.NewRouter()
			router.Method(http.MethodGet, "/posts/{postID}", New(&stubService{err: testcase.serviceErr}))
			rw := httptest.NewRecorder()

			router.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, testcase.url, nil))

			assert.Equal(t, testcase.expectedStatus, rw.Code)
		})
	}
}
