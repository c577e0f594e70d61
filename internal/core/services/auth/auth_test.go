package auth

import (
	"blogapi/internal/core/domain/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type input struct {
	User user.User
}

func (i input) WithAuthenticatedUser(u user.User) Input {
	i.User = u
	return i
}

type result struct{}

type stubService struct {
	Received  input
	WasCalled bool
}

func (s *stubService) Run(ctx context.Context, input input) (result result, err error) {
	s.WasCalled = true
	s.Received = input
	return result, nil
}

type testSuite struct {
	suite.Suite
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Inner             *stubService
	User              user.User
}

func (suite *testSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Inner = &stubService{}

	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Name:         "John",
		Email:        "john@doe.org",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	})
	suite.Require().Nil(err)
	suite.User = u
	err = suite.SessionRepository.Create(context.Background(), user.CreateSessionInput{
		UserID: u.ID, Token: "valid-token", CreatedAt: time.Now().UTC(),
	})
	suite.Require().Nil(err)
}

func TestAuthDecorator(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestUserInjected() {
	s := WithAuthentication[input, result](suite.SessionRepository, suite.Inner)
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, user.SessionToken("valid-token"))

	_, err := s.Run(ctx, input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.Inner.WasCalled)
	assert.Equal(suite.User, suite.Inner.Received.User)
}

func (suite *testSuite) TestNoToken() {
	s := WithAuthentication[input, result](suite.SessionRepository, suite.Inner)

	_, err := s.Run(context.Background(), input{})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrSessionDoesNotExist)
	assert.False(suite.Inner.WasCalled)
}

func (suite *testSuite) TestInvalidToken() {
	s := WithAuthentication[input, result](suite.SessionRepository, suite.Inner)
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, user.SessionToken("invalid"))

	_, err := s.Run(ctx, input{})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrSessionDoesNotExist)
	assert.False(suite.Inner.WasCalled)
}
