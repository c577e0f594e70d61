package purgeexpiredpasswordresets

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/core/services"
	"context"
	"time"

	"github.com/golang-module/carbon/v2"
)

type Input struct{}

type Result struct {
	Count int64
}

type service struct {
	log        logging.Logger
	repository passwordreset.Repository
	validFor   time.Duration
	now        func() time.Time
}

func New(
	log logging.Logger,
	repository passwordreset.Repository,
	validFor time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		repository: repository,
		validFor:   validFor,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	cutoff := carbon.Time2Carbon(s.now()).SubSeconds(int(s.validFor / time.Second)).Carbon2Time()
	count, err := s.repository.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("cutoff", cutoff))
		return result, err
	}
	if count > 0 {
		s.log.Info(
			ctx,
			"Expired password reset tokens purged.",
			logging.Entry("count", count),
			logging.Entry("cutoff", cutoff),
		)
	}
	return Result{Count: count}, nil
}
