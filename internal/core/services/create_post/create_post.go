package createpost

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	"blogapi/internal/core/services/auth"
	"context"
	"time"
)

type Input struct {
	UserID  user.ID
	Title   post.Title
	Content post.Content
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
	eventPublisher post.EventPublisher
	now            func() time.Time
}

func New(
	log logging.Logger,
	postRepository post.Repository,
	eventPublisher post.EventPublisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if postRepository == nil {
		panic(e.NewNilArgumentError("postRepository"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		postRepository: postRepository,
		eventPublisher: eventPublisher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	p, err := s.postRepository.Create(ctx, post.CreateInput{
		AuthorID:  input.UserID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	if err := s.eventPublisher.Publish(ctx, post.Event{Type: post.EventCreated, Post: p}); err != nil {
		s.log.Warning(ctx, "Could not publish post event.", logging.Entry("postID", p.ID), logging.Entry("err", err))
	}

	s.log.Info(ctx, "Post created.", logging.Entry("postID", p.ID), logging.Entry("userID", input.UserID))
	return Result{Post: p}, nil
}
