package requestpasswordreset

import (
	c "blogapi/internal/core/domain/common"
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	passwordreset "blogapi/internal/core/domain/password_reset"
	uow "blogapi/internal/core/domain/unit_of_work"
	"blogapi/internal/core/domain/user"
	"blogapi/internal/core/services"
	"context"
	"errors"
	"fmt"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "request-password-reset::" + string(i.Email)
}

type Result struct{}

type service struct {
	log             logging.Logger
	errorReporter   logging.ErrorReporter
	unitOfWork      uow.UnitOfWork
	userRepository  user.UserRepository
	secretGenerator passwordreset.SecretGenerator
	secretHasher    passwordreset.SecretHasher
	notifier        passwordreset.Notifier
	now             func() time.Time
}

func New(
	log logging.Logger,
	errorReporter logging.ErrorReporter,
	unitOfWork uow.UnitOfWork,
	userRepository user.UserRepository,
	secretGenerator passwordreset.SecretGenerator,
	secretHasher passwordreset.SecretHasher,
	notifier passwordreset.Notifier,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if errorReporter == nil {
		panic(e.NewNilArgumentError("errorReporter"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if secretGenerator == nil {
		panic(e.NewNilArgumentError("secretGenerator"))
	}
	if secretHasher == nil {
		panic(e.NewNilArgumentError("secretHasher"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		errorReporter:   errorReporter,
		unitOfWork:      unitOfWork,
		userRepository:  userRepository,
		secretGenerator: secretGenerator,
		secretHasher:    secretHasher,
		notifier:        notifier,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Password reset requested for unknown email.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	secret, err := s.secretGenerator.GenerateSecret()
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	secretHash, err := s.secretHasher.HashSecret(secret)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	err = s.replaceToken(ctx, input.Email, secretHash)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	err = s.notifier.Notify(ctx, input.Email, secret)
	if err != nil {
		err = fmt.Errorf("%w: %w", passwordreset.ErrDispatch, err)
		s.log.Error(
			ctx,
			"Could not dispatch password reset secret.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		s.errorReporter.Report(ctx, err, logging.Entry("email", input.Email))
		return result, nil
	}

	s.log.Info(ctx, "Password reset token has been issued.", logging.Entry("email", input.Email))
	return result, nil
}

func (s *service) replaceToken(ctx context.Context, email c.Email, secretHash passwordreset.SecretHash) error {
	tx, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.PasswordResets().Replace(ctx, passwordreset.ReplaceInput{
		Email:      email,
		SecretHash: secretHash,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}
