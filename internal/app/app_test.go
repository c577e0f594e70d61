package app

import (
	"blogapi/internal/app/deps"
	"blogapi/internal/app/services"
	"blogapi/internal/config"
	"blogapi/internal/core/domain/logging"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/core/domain/post"
	drl "blogapi/internal/core/domain/rate_limiter"
	uow "blogapi/internal/core/domain/unit_of_work"
	"blogapi/internal/core/domain/user"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	notifier *passwordreset.FakeNotifier
	router   http.Handler
}

func (s *testSuite) SetupTest() {
	unitOfWork := uow.NewFakeUnitOfWork()
	s.notifier = passwordreset.NewFakeNotifier()

	d := &deps.Deps{
		Config: &config.Config{
			PasswordResetTokenTTLMinutes: 60,
			AllowedOrigins:               []string{"*"},
		},
		Logger:                       logging.NewFakeLogger(),
		ErrorReporter:                logging.NewFakeErrorReporter(),
		SseServer:                    sse.New(),
		Now:                          func() time.Time { return time.Now().UTC() },
		UnitOfWork:                   unitOfWork,
		UserRepository:               unitOfWork.Context.UserRepository,
		SessionRepository:            unitOfWork.Context.SessionRepository,
		PasswordResetRepository:      unitOfWork.Context.PasswordResetRepository,
		PostRepository:               unitOfWork.Context.PostRepository,
		RateLimiter:                  drl.NewFakeRateLimiter(true),
		PasswordHasher:               user.NewFakePasswordHasher(),
		SessionTokenGenerator:        user.NewFakeSessionTokenGenerator("session-token"),
		PasswordResetSecretGenerator: passwordreset.NewFakeSecretGenerator("secret"),
		PasswordResetSecretHasher:    passwordreset.NewFakeSecretHasher(),
		PasswordResetNotifier:        s.notifier,
		PostEventPublisher:           post.NewFakeEventPublisher(),
	}
	s.router = NewRouter(d, services.InitServices(d))
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) do(method string, url string, body string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rw := httptest.NewRecorder()
	s.router.ServeHTTP(rw, req)
	return rw
}

func (s *testSuite) register() {
	rw := s.do(
		http.MethodPost,
		"/auth/register",
		`{"name": "Ann", "email": "ann@x.test", "password": "old-password", "password_confirmation": "old-password"}`,
		"",
	)
	s.Require().Equal(http.StatusCreated, rw.Code)
}

func (s *testSuite) TestPasswordResetFlow() {
	s.register()

	rw := s.do(http.MethodPost, "/auth/forgot-password", `{"email": "ANN@x.test"}`, "")
	s.Equal(http.StatusOK, rw.Code)
	s.Equal(1, s.notifier.SentCount())
	secret := string(s.notifier.LastSent().Secret)

	rw = s.do(
		http.MethodPost,
		"/auth/reset-password",
		`{"email": "ann@x.test", "token": "wrong", "password": "new-password", "password_confirmation": "new-password"}`,
		"",
	)
	s.Equal(http.StatusBadRequest, rw.Code)

	resetBody := `{"email": "ann@x.test", "token": "` + secret +
		`", "password": "new-password", "password_confirmation": "new-password"}`
	rw = s.do(http.MethodPost, "/auth/reset-password", resetBody, "")
	s.Equal(http.StatusOK, rw.Code)

	rw = s.do(http.MethodPost, "/auth/reset-password", resetBody, "")
	s.Equal(http.StatusBadRequest, rw.Code)

	rw = s.do(http.MethodGet, "/auth/me", "", "session-token")
	s.Equal(http.StatusUnauthorized, rw.Code)

	rw = s.do(http.MethodPost, "/auth/login", `{"email": "ann@x.test", "password": "old-password"}`, "")
	s.Equal(http.StatusUnauthorized, rw.Code)

	rw = s.do(http.MethodPost, "/auth/login", `{"email": "ann@x.test", "password": "new-password"}`, "")
	s.Equal(http.StatusOK, rw.Code)

	rw = s.do(http.MethodGet, "/auth/me", "", "session-token")
	s.Equal(http.StatusOK, rw.Code)
}

func (s *testSuite) TestForgotPasswordUnknownEmail() {
	rw := s.do(http.MethodPost, "/auth/forgot-password", `{"email": "nobody@x.test"}`, "")

	s.Equal(http.StatusNotFound, rw.Code)
	s.Equal(0, s.notifier.SentCount())
}

func (s *testSuite) TestPosts() {
	s.register()

	rw := s.do(http.MethodPost, "/posts", `{"title": "Hello", "content": "World"}`, "session-token")
	s.Equal(http.StatusCreated, rw.Code)

	rw = s.do(http.MethodGet, "/posts", "", "session-token")
	s.Equal(http.StatusOK, rw.Code)
	s.Contains(rw.Body.String(), `"total_count":1`)

	rw = s.do(http.MethodPut, "/posts/1", `{"title": "Hello!", "content": "World"}`, "session-token")
	s.Equal(http.StatusOK, rw.Code)

	rw = s.do(http.MethodGet, "/posts/1", "", "session-token")
	s.Equal(http.StatusOK, rw.Code)
	s.Contains(rw.Body.String(), `"title":"Hello!"`)

	rw = s.do(http.MethodDelete, "/posts/1", "", "session-token")
	s.Equal(http.StatusOK, rw.Code)

	rw = s.do(http.MethodGet, "/posts/1", "", "session-token")
	s.Equal(http.StatusNotFound, rw.Code)
}

func (s *testSuite) TestPostsRequireAuthentication() {
	rw := s.do(http.MethodGet, "/posts", "", "")
	s.Equal(http.StatusUnauthorized, rw.Code)

	rw = s.do(http.MethodPost, "/posts", `{"title": "Hello", "content": "World"}`, "unknown")
	s.Equal(http.StatusUnauthorized, rw.Code)
}
