package passwordreset

import (
	c "blogapi/internal/core/domain/common"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/db"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const EMAIL = c.Email("a@x.test")

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxPasswordResetRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) replace(email c.Email, hash string, createdAt time.Time) (passwordreset.Token, error) {
	return suite.repo.Replace(context.Background(), passwordreset.ReplaceInput{
		Email:      email,
		SecretHash: passwordreset.SecretHash(hash),
		CreatedAt:  createdAt,
	})
}

func (suite *testSuite) TestCreateAndGet() {
	assert := suite.Require()
	created, err := suite.replace(EMAIL, "hash", NOW)
	assert.Nil(err)
	assert.Equal(EMAIL, created.Email)
	assert.Equal(passwordreset.SecretHash("hash"), created.SecretHash)
	assert.True(NOW.Equal(created.CreatedAt))

	token, err := suite.repo.GetByEmail(context.Background(), EMAIL)
	assert.Nil(err)
	assert.Equal(created, token)
}

func (suite *testSuite) TestReplaceOverwritesExistingToken() {
	assert := suite.Require()
	_, err := suite.replace(EMAIL, "first", NOW)
	assert.Nil(err)

	replaced, err := suite.replace(EMAIL, "second", NOW.Add(time.Minute))
	assert.Nil(err)
	assert.Equal(passwordreset.SecretHash("second"), replaced.SecretHash)

	token, err := suite.repo.GetByEmail(context.Background(), EMAIL)
	assert.Nil(err)
	assert.Equal(passwordreset.SecretHash("second"), token.SecretHash)
	assert.True(NOW.Add(time.Minute).Equal(token.CreatedAt))

	var count int
	err = suite.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM password_reset_token`).Scan(&count)
	assert.Nil(err)
	assert.Equal(1, count)
}

func (suite *testSuite) TestGetMissing() {
	_, err := suite.repo.GetByEmail(context.Background(), EMAIL)
	suite.Require().ErrorIs(err, passwordreset.ErrTokenDoesNotExist)

	_, err = suite.repo.GetByEmailForUpdate(context.Background(), EMAIL)
	suite.Require().ErrorIs(err, passwordreset.ErrTokenDoesNotExist)
}

func (suite *testSuite) TestDeleteByEmail() {
	assert := suite.Require()
	ctx := context.Background()
	_, err := suite.replace(EMAIL, "hash", NOW)
	assert.Nil(err)

	count, err := suite.repo.DeleteByEmail(ctx, EMAIL)
	assert.Nil(err)
	assert.Equal(int64(1), count)

	count, err = suite.repo.DeleteByEmail(ctx, EMAIL)
	assert.Nil(err)
	assert.Equal(int64(0), count)
}

func (suite *testSuite) TestDeleteCreatedBefore() {
	assert := suite.Require()
	_, err := suite.replace("old@x.test", "hash", NOW.Add(-2*time.Hour))
	assert.Nil(err)
	_, err = suite.replace("fresh@x.test", "hash", NOW)
	assert.Nil(err)

	count, err := suite.repo.DeleteCreatedBefore(context.Background(), NOW.Add(-time.Hour))
	assert.Nil(err)
	assert.Equal(int64(1), count)

	_, err = suite.repo.GetByEmail(context.Background(), "old@x.test")
	assert.ErrorIs(err, passwordreset.ErrTokenDoesNotExist)
	_, err = suite.repo.GetByEmail(context.Background(), "fresh@x.test")
	assert.Nil(err)
}
