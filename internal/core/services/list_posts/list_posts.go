package listposts

import (
	c "blogapi/internal/core/domain/common"
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	"blogapi/internal/core/services/auth"
	"context"
)

const (
	DEFAULT_LIMIT = 100
	MAX_LIMIT     = 100
)

type Input struct {
	UserID user.ID
	Limit  c.Optional[uint]
	Offset uint
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Posts      []post.Post
	TotalCount uint
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
	limit := uint(DEFAULT_LIMIT)
	if input.Limit.IsPresent && input.Limit.Value < MAX_LIMIT {
		limit = input.Limit.Value
	}

	posts, err := s.postRepository.Read(ctx, post.ReadOptions{Limit: limit, Offset: input.Offset})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	totalCount, err := s.postRepository.Count(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Debug(
		ctx,
		"Posts read.",
		logging.Entry("userID", input.UserID),
		logging.Entry("count", len(posts)),
		logging.Entry("totalCount", totalCount),
	)
	return Result{Posts: posts, TotalCount: totalCount}, nil
}
