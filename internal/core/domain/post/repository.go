package post

import (
	"blogapi/internal/core/domain/user"
	"context"
	"time"
)

type CreateInput struct {
	AuthorID  user.ID
	Title     Title
	Content   Content
	CreatedAt time.Time
}

type UpdateInput struct {
	ID        ID
	Title     Title
	Content   Content
	UpdatedAt time.Time
}

type ReadOptions struct {
	Limit  uint
	Offset uint
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Post, error)
	GetByID(ctx context.Context, id ID) (Post, error)
	GetByIDForUpdate(ctx context.Context, id ID) (Post, error)
	Read(ctx context.Context, options ReadOptions) ([]Post, error)
	Count(ctx context.Context) (uint, error)
	Update(ctx context.Context, input UpdateInput) (Post, error)
	Delete(ctx context.Context, id ID) error
}
