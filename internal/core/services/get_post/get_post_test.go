package getpost

import (
	"blogapi/internal/core/domain/logging"
	"blogapi/internal/core/domain/post"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetPost(t *testing.T) {
	repository := post.NewFakeRepository()
	p, err := repository.Create(context.Background(), post.CreateInput{
		AuthorID: 1, Title: "Title", Content: "Content", CreatedAt: time.Now().UTC(),
	})
	require.Nil(t, err)
	s := New(logging.NewFakeLogger(), repository)

	result, err := s.Run(context.Background(), Input{UserID: 2, PostID: p.ID})
	require.Nil(t, err)
	require.Equal(t, p, result.Post)

	_, err = s.Run(context.Background(), Input{UserID: 2, PostID: p.ID + 1})
	require.ErrorIs(t, err, post.ErrPostDoesNotExist)
}
