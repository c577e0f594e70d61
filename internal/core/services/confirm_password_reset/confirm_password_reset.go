package confirmpasswordreset

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
	"time"
)

type Input struct {
	Email       c.Email
	Secret      passwordreset.Secret
	NewPassword user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "confirm-password-reset::" + string(i.Email)
}

type Result struct{}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	secretHasher   passwordreset.SecretHasher
	passwordHasher user.PasswordHasher
	validFor       time.Duration
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	secretHasher passwordreset.SecretHasher,
	passwordHasher user.PasswordHasher,
	validFor time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if secretHasher == nil {
		panic(e.NewNilArgumentError("secretHasher"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		secretHasher:   secretHasher,
		passwordHasher: passwordHasher,
		validFor:       validFor,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	tx, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	defer tx.Rollback(ctx)

	token, err := tx.PasswordResets().GetByEmailForUpdate(ctx, input.Email)
	if errors.Is(err, passwordreset.ErrTokenDoesNotExist) {
		s.log.Info(ctx, "Password reset token not found.", logging.Entry("email", input.Email))
		return result, passwordreset.ErrInvalidOrExpiredToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	if !s.secretHasher.ValidateSecret(input.Secret, token.SecretHash) {
		s.log.Info(ctx, "Invalid password reset secret supplied.", logging.Entry("email", input.Email))
		return result, passwordreset.ErrInvalidOrExpiredToken
	}

	if token.IsExpired(s.now(), s.validFor) {
		if _, err := tx.PasswordResets().DeleteByEmail(ctx, input.Email); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
			return result, err
		}
		if err := tx.Commit(ctx); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
			return result, err
		}
		s.log.Info(
			ctx,
			"Expired password reset token deleted.",
			logging.Entry("email", input.Email),
			logging.Entry("createdAt", token.CreatedAt),
		)
		return result, passwordreset.ErrInvalidOrExpiredToken
	}

	// Hashed under the row lock, after the token has been checked.
	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	u, err := tx.Users().GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	err = tx.Users().SetPassword(ctx, u.ID, newPasswordHash)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	deleted, err := tx.PasswordResets().DeleteByEmail(ctx, input.Email)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}
	if deleted == 0 {
		s.log.Warning(ctx, "Password reset token consumed concurrently.", logging.Entry("userID", u.ID))
		return result, passwordreset.ErrInvalidOrExpiredToken
	}

	revoked, err := tx.Sessions().DeleteByUserID(ctx, u.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	if err := tx.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", u.ID),
		logging.Entry("revokedSessions", revoked),
	)
	return result, nil
}
