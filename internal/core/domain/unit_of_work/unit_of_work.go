package uow

import (
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	"context"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	PasswordResets() passwordreset.Repository
	Posts() post.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
