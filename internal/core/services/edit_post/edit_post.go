package editpost

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	"blogapi/internal/core/domain/post"
	uow "blogapi/internal/core/domain/unit_of_work"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	"blogapi/internal/core/services/auth"
	"context"
	"errors"
	"time"
)

type Input struct {
	UserID  user.ID
	PostID  post.ID
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
	unitOfWork     uow.UnitOfWork
	eventPublisher post.EventPublisher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	eventPublisher post.EventPublisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		eventPublisher: eventPublisher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postID", input.PostID))
		return result, err
	}
	defer uow.Rollback(ctx)

	p, err := uow.Posts().GetByIDForUpdate(ctx, input.PostID)
	if errors.Is(err, post.ErrPostDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postID", input.PostID))
		return result, err
	}
	if !p.BelongsTo(input.UserID) {
		s.log.Info(
			ctx,
			"User is not allowed to edit the post.",
			logging.Entry("postID", p.ID),
			logging.Entry("userID", input.UserID),
		)
		return result, post.ErrPostPermission
	}

	updated, err := uow.Posts().Update(ctx, post.UpdateInput{
		ID:        p.ID,
		Title:     input.Title,
		Content:   input.Content,
		UpdatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postID", p.ID))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("postID", p.ID))
		return result, err
	}

	if err := s.eventPublisher.Publish(ctx, post.Event{Type: post.EventUpdated, Post: updated}); err != nil {
		s.log.Warning(ctx, "Could not publish post event.", logging.Entry("postID", p.ID), logging.Entry("err", err))
	}

	s.log.Info(ctx, "Post updated.", logging.Entry("postID", p.ID))
	return Result{Post: updated}, nil
}
