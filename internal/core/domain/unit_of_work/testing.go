package uow

import (
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/core/domain/post"
	"blogapi/internal/core/domain/user"
	"context"
	"fmt"
	"sync"
)

type FakeUnitOfWorkContext struct {
	UserRepository          *user.FakeUserRepository
	SessionRepository       *user.FakeSessionRepository
	PasswordResetRepository *passwordreset.FakeRepository
	PostRepository          *post.FakeRepository
	WasRollbackCalled       bool
	WasCommitCalled         bool
	lock                    sync.Mutex
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	sessionRepository *user.FakeSessionRepository,
	passwordResetRepository *passwordreset.FakeRepository,
	postRepository *post.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:          userRepository,
		SessionRepository:       sessionRepository,
		PasswordResetRepository: passwordResetRepository,
		PostRepository:          postRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) PasswordResets() passwordreset.Repository {
	return c.PasswordResetRepository
}

func (c *FakeUnitOfWorkContext) Posts() post.Repository {
	return c.PostRepository
}

// FakeUnitOfWork shares one set of in-memory repositories between every Begin.
// Rollback does not undo writes; tests assert on the Was*Called flags instead.
type FakeUnitOfWork struct {
	Context     *FakeUnitOfWorkContext
	BeginCount  int
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	userRepository := user.NewFakeUserRepository()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			userRepository,
			user.NewFakeSessionRepository(userRepository),
			passwordreset.NewFakeRepository(),
			post.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnError {
		return nil, fmt.Errorf("could not begin transaction")
	}
	u.lock.Lock()
	defer u.lock.Unlock()
	u.BeginCount++
	return u.Context, nil
}
