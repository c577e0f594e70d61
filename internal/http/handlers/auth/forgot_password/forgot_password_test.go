package forgotpassword

import (
	c "blogapi/internal/core/domain/common"
	ratelimiter "blogapi/internal/core/domain/rate_limiter"
	"blogapi/internal/core/domain/user"
	service "blogapi/internal/core/services/request_password_reset"
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

func TestForgotPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		conceal        bool
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "success",
			body:           `{"email": " A@X.test "}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message": "We have emailed your password reset token."}`,
		},
		{
			id:             "unknown email disclosed",
			body:           `{"email": "a@x.test"}`,
			serviceErr:     user.ErrUserDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "user does not exist"}`,
		},
		{
			id:             "unknown email concealed",
			body:           `{"email": "a@x.test"}`,
			serviceErr:     user.ErrUserDoesNotExist,
			conceal:        true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message": "We have emailed your password reset token."}`,
		},
		{
			id:             "rate limited",
			body:           `{"email": "a@x.test"}`,
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error": "rate limit exceeded"}`,
		},
		{
			id:             "store failure",
			body:           `{"email": "a@x.test"}`,
			serviceErr:     errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "internal error"}`,
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"email": "must be a valid email address"}`,
		},
		{
			id:             "invalid json",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid request data"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{err: testcase.serviceErr}
			handler := New(s, testcase.conceal)
			req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", strings.NewReader(testcase.body))
			rw := httptest.NewRecorder()

			handler.ServeHTTP(rw, req)

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.JSONEq(t, testcase.expectedBody, rw.Body.String())
			if testcase.id == "success" {
				assert.Equal(t, c.Email("a@x.test"), s.input.Email)
			}
		})
	}
}
