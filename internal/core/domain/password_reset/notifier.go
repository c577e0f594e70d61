package passwordreset

import (
	c "blogapi/internal/core/domain/common"
	"context"
)

// Notifier delivers a reset secret to the owner of the email address.
type Notifier interface {
	Notify(ctx context.Context, email c.Email, secret Secret) error
}
