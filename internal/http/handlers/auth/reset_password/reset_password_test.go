package resetpassword

import (
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/core/domain/user"
	service "blogapi/internal/core/services/confirm_password_reset"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

const validBody = `{
	"email": "a@x.test",
	"token": "secret",
	"password": "new-password",
	"password_confirmation": "new-password"
}`

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "success",
			body:           validBody,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message": "Your password has been reset."}`,
		},
		{
			id:             "invalid or expired token",
			body:           validBody,
			serviceErr:     passwordreset.ErrInvalidOrExpiredToken,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid or expired token"}`,
		},
		{
			id:             "user deleted",
			body:           validBody,
			serviceErr:     user.ErrUserDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "user does not exist"}`,
		},
		{
			id:             "store failure",
			body:           validBody,
			serviceErr:     errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "internal error"}`,
		},
		{
			id: "confirmation mismatch",
			body: `{
				"email": "a@x.test",
				"token": "secret",
				"password": "new-password",
				"password_confirmation": "other-password"
			}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"password_confirmation": "passwords do not match"}`,
		},
		{
			id: "short password",
			body: `{
				"email": "a@x.test",
				"token": "secret",
				"password": "abc",
				"password_confirmation": "abc"
			}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"password": "the length must be between 6 and 256"}`,
		},
		{
			id:             "missing token",
			body:           `{"email": "a@x.test", "password": "new-password", "password_confirmation": "new-password"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"token": "cannot be blank"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{err: testcase.serviceErr}
			handler := New(s)
			req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", strings.NewReader(testcase.body))
			rw := httptest.NewRecorder()

			handler.ServeHTTP(rw, req)

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.JSONEq(t, testcase.expectedBody, rw.Body.String())
		})
	}
}

func TestResetPasswordHandlerPassesInput(t *testing.T) {
	s := &stubService{}
	handler := New(s)
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", strings.NewReader(validBody))

	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotNil(t, s.input)
	assert.EqualValues(t, "a@x.test", s.input.Email)
	assert.Equal(t, passwordreset.Secret("secret"), s.input.Secret)
	assert.Equal(t, user.RawPassword("new-password"), s.input.NewPassword)
}
