package getpost

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	"blogapi/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	UserID user.ID
	PostID post.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Post post.Post
}

type service struct {
	log            logging.Logger
	postRepository post.Repository
}

func New(log logging.Logger, postRepository post.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if postRepository == nil {
		panic(e.NewNilArgumentError("postRepository"))
	}
	return &service{log: log, postRepository: postRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	p, err := s.postRepository.GetByID(ctx, input.PostID)
	if errors.Is(err, post.ErrPostDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postID", input.PostID))
		return result, err
	}
	return Result{Post: p}, nil
}
