package purgeexpiredpasswordresets

import (
	c "blogapi/internal/core/domain/common"
	"blogapi/internal/core/domain/logging"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	Repository *passwordreset.FakeRepository
	Now        time.Time
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Repository = passwordreset.NewFakeRepository()
	suite.Now = time.Date(2023, 1, 2, 15, 0, 0, 0, time.UTC)
}

func TestPurgeExpiredPasswordResetsService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) create(email c.Email, createdAt time.Time) {
	_, err := suite.Repository.Replace(context.Background(), passwordreset.ReplaceInput{
		Email: email, SecretHash: "hash", CreatedAt: createdAt,
	})
	suite.Require().Nil(err)
}

func (suite *testSuite) TestOnlyExpiredTokensArePurged() {
	suite.create("fresh@x.test", suite.Now.Add(-10*time.Minute))
	suite.create("edge@x.test", suite.Now.Add(-60*time.Minute))
	suite.create("old@x.test", suite.Now.Add(-61*time.Minute))
	suite.create("ancient@x.test", suite.Now.Add(-48*time.Hour))
	s := New(suite.Logger, suite.Repository, time.Hour, func() time.Time { return suite.Now })

	result, err := s.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(int64(2), result.Count)
	assert.Equal(2, suite.Repository.Count())
	_, err = suite.Repository.GetByEmail(context.Background(), "fresh@x.test")
	assert.Nil(err)
	_, err = suite.Repository.GetByEmail(context.Background(), "edge@x.test")
	assert.Nil(err)
}

func (suite *testSuite) TestNothingToPurge() {
	s := New(suite.Logger, suite.Repository, time.Hour, func() time.Time { return suite.Now })

	result, err := s.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(int64(0), result.Count)
	assert.Equal(0, suite.Logger.Count(logging.INFO))
}

func (suite *testSuite) TestRepositoryFailure() {
	suite.Repository.ReturnError = true
	s := New(suite.Logger, suite.Repository, time.Hour, func() time.Time { return suite.Now })

	_, err := s.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(1, suite.Logger.Count(logging.ERROR))
}
