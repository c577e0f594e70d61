package user

import (
	"blogapi/internal/core/domain/user"
	"blogapi/internal/db"
	"context"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	SESSION_TOKEN = "test-session-token"
)

type testSessionSuite struct {
	suite.Suite
	pool              *pgxpool.Pool
	userRepository    *PgxUserRepository
	sessionRepository *PgxSessionRepository
}

func (suite *testSessionSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.userRepository = NewPgxRepository(suite.pool)
	suite.sessionRepository = NewPgxSessionRepository(suite.pool)
}

func (suite *testSessionSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSessionSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	suite.Run(t, new(testSessionSuite))
}

func (s *testSessionSuite) TestCreate() {
	u := s.createUser()

	err := s.createSession(u, SESSION_TOKEN)
	found, ok := s.getUserByToken(user.SessionToken(SESSION_TOKEN))
	s.Nil(err)
	s.True(ok)
	s.Equal(u.ID, found.ID)
}

func (s *testSessionSuite) TestDeleteSuccess() {
	u := s.createUser()
	s.Nil(s.createSession(u, SESSION_TOKEN))

	userID, err := s.sessionRepository.Delete(context.Background(), user.SessionToken(SESSION_TOKEN))
	s.Nil(err)
	s.Equal(u.ID, userID)
	_, ok := s.getUserByToken(user.SessionToken(SESSION_TOKEN))
	s.False(ok)
}

func (s *testSessionSuite) TestDeleteUnknownToken() {
	_, err := s.sessionRepository.Delete(context.Background(), user.SessionToken("unknown"))
	s.ErrorIs(err, user.ErrSessionDoesNotExist)
}

func (s *testSessionSuite) TestDeleteByUserID() {
	u := s.createUser()
	s.Nil(s.createSession(u, "token-1"))
	s.Nil(s.createSession(u, "token-2"))

	count, err := s.sessionRepository.DeleteByUserID(context.Background(), u.ID)
	s.Nil(err)
	s.Equal(int64(2), count)
	_, ok := s.getUserByToken("token-1")
	s.False(ok)
	_, ok = s.getUserByToken("token-2")
	s.False(ok)
}

func (s *testSessionSuite) createUser() user.User {
	s.T().Helper()
	u, err := s.userRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Name:         NAME,
			Email:        EMAIL,
			PasswordHash: PASSWORD_HASH,
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}

func (s *testSessionSuite) createSession(u user.User, token string) error {
	return s.sessionRepository.Create(
		context.Background(),
		user.CreateSessionInput{
			UserID:    u.ID,
			Token:     user.SessionToken(token),
			CreatedAt: NOW,
		},
	)
}

func (s *testSessionSuite) getUserByToken(token user.SessionToken) (user.User, bool) {
	s.T().Helper()
	u, err := s.sessionRepository.GetUserByToken(context.Background(), token)
	if err != nil {
		s.ErrorIs(err, user.ErrSessionDoesNotExist)
		return u, false
	}
	return u, true
}
