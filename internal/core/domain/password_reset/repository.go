package passwordreset

import (
	c "blogapi/internal/core/domain/common"
	"context"
	"time"
)

type ReplaceInput struct {
	Email      c.Email
	SecretHash SecretHash
	CreatedAt  time.Time
}

type Repository interface {
	// Replace stores the token, overwriting any token already kept for the email.
	Replace(ctx context.Context, input ReplaceInput) (Token, error)
	GetByEmail(ctx context.Context, email c.Email) (Token, error)
	// GetByEmailForUpdate locks the row until the surrounding transaction ends.
	GetByEmailForUpdate(ctx context.Context, email c.Email) (Token, error)
	DeleteByEmail(ctx context.Context, email c.Email) (count int64, err error)
	DeleteCreatedBefore(ctx context.Context, before time.Time) (count int64, err error)
}
