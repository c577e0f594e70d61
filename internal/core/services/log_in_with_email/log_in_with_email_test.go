package loginwithemail

import (
	c "blogapi/internal/core/domain/common"
	"blogapi/internal/core/domain/logging"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	SESSION_TOKEN = "test-session-token"
	EMAIL         = c.Email("test@test.test")
	RAW_PASSWORD  = user.RawPassword("test-password")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	PasswordHasher    *user.FakePasswordHasher
	Service           services.Service[Input, Result]
	User              user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.SessionRepository,
		suite.PasswordHasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return NOW },
	)

	hash, err := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	suite.Require().Nil(err)
	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Name:         "John",
		Email:        EMAIL,
		PasswordHash: hash,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	suite.User = u
	suite.PasswordHasher.HashedCount = 0
}

func TestLogInWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.Token)
	assert.Equal(suite.User.ID, result.User.ID)

	u, err := suite.SessionRepository.GetUserByToken(ctx, result.Token)
	assert.Nil(err)
	assert.Equal(suite.User.ID, u.ID)
}

func (suite *testSuite) TestWrongPassword() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: "wrong"})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrInvalidCredentials)
	assert.Equal(0, suite.SessionRepository.CountForUser(suite.User.ID))
}

func (suite *testSuite) TestUnknownEmailHashesPasswordAnyway() {
	_, err := suite.Service.Run(context.Background(), Input{Email: "nobody@test.test", Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrInvalidCredentials)
	assert.Equal(1, suite.PasswordHasher.HashedCount)
}
