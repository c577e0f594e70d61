package signupwithemail

import (
	"blogapi/internal/core/domain/user"
	service "blogapi/internal/core/services/sign_up_with_email"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.User = user.User{
		ID:        1,
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	result.Token = "session-token"
	return result, nil
}

func TestSignUpWithEmailHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "success",
			body:           `{"name": "Ann", "email": "ann@x.test", "password": "123456", "password_confirmation": "123456"}`,
			expectedStatus: http.StatusCreated,
			expectedBody: `{
				"user": {"id": 1, "name": "Ann", "email": "ann@x.test", "created_at": "2023-01-02T03:04:05Z"},
				"access_token": "session-token"
			}`,
		},
		{
			id:             "email already exists",
			body:           `{"name": "Ann", "email": "ann@x.test", "password": "123456", "password_confirmation": "123456"}`,
			serviceErr:     user.ErrEmailAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error": "email already exists"}`,
		},
		{
			id:             "missing name",
			body:           `{"email": "ann@x.test", "password": "123456", "password_confirmation": "123456"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"name": "cannot be blank"}`,
		},
		{
			id:             "confirmation mismatch",
			body:           `{"name": "Ann", "email": "ann@x.test", "password": "123456", "password_confirmation": "654321"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"password_confirmation": "passwords do not match"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			handler := New(&stubService{err: testcase.serviceErr})
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(testcase.body))
			rw := httptest.NewRecorder()

			handler.ServeHTTP(rw, req)

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.JSONEq(t, testcase.expectedBody, rw.Body.String())
		})
	}
}
