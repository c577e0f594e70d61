package getuserbysessiontoken

import (
	"blogapi/internal/core/domain/logging"
	"blogapi/internal/core/domain/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetUserBySessionToken(t *testing.T) {
	ctx := context.Background()
	userRepository := user.NewFakeUserRepository()
	sessionRepository := user.NewFakeSessionRepository(userRepository)
	u, err := userRepository.Create(ctx, user.CreateUserInput{
		Name: "John", Email: "john@doe.org", PasswordHash: "hash", CreatedAt: time.Now().UTC(),
	})
	require.Nil(t, err)
	require.Nil(t, sessionRepository.Create(ctx, user.CreateSessionInput{UserID: u.ID, Token: "token"}))

	s := New(logging.NewFakeLogger(), sessionRepository)

	cases := []struct {
		token user.SessionToken
		err   error
	}{
		{token: "token", err: nil},
		{token: "unknown", err: user.ErrSessionDoesNotExist},
		{token: "", err: user.ErrSessionDoesNotExist},
	}
	for _, testCase := range cases {
		t.Run(string(testCase.token), func(t *testing.T) {
			result, err := s.Run(ctx, Input{Token: testCase.token})
			if testCase.err != nil {
				require.ErrorIs(t, err, testCase.err)
				return
			}
			require.Nil(t, err)
			require.Equal(t, u.ID, result.User.ID)
		})
	}
}
