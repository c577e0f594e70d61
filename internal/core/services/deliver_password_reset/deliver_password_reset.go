package deliverpasswordreset

import (
	c "blogapi/internal/core/domain/common"
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/core/services"
	"context"
	"fmt"
)

// Input is a queued reset notification waiting to be delivered.
type Input struct {
	Email  c.Email
	Secret passwordreset.Secret
}

type Result struct{}

type service struct {
	log           logging.Logger
	errorReporter logging.ErrorReporter
	notifier      passwordreset.Notifier
}

func New(
	log logging.Logger,
	errorReporter logging.ErrorReporter,
	notifier passwordreset.Notifier,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if errorReporter == nil {
		panic(e.NewNilArgumentError("errorReporter"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{
		log:           log,
		errorReporter: errorReporter,
		notifier:      notifier,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.notifier.Notify(ctx, input.Email, input.Secret); err != nil {
		err = fmt.Errorf("%w: %w", passwordreset.ErrDispatch, err)
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		s.errorReporter.Report(ctx, err, logging.Entry("email", input.Email))
		return result, err
	}
	s.log.Info(ctx, "Password reset secret delivered.", logging.Entry("email", input.Email))
	return result, nil
}
