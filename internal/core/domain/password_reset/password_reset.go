// Package passwordreset holds the password reset token model and the
// collaborators the reset use cases depend on.
package passwordreset

import (
	c "blogapi/internal/core/domain/common"
	"time"

	"github.com/golang-module/carbon/v2"
)

// Secret is the plaintext value handed to the account owner. It is never
// persisted and masks itself when formatted.
type Secret string

func (s Secret) String() string {
	return "***"
}

type SecretHash string

func (h SecretHash) String() string {
	return "***"
}

// Token is the stored half of a reset request. At most one exists per email.
type Token struct {
	Email      c.Email
	SecretHash SecretHash
	CreatedAt  time.Time
}

func (t Token) ExpiresAt(validFor time.Duration) time.Time {
	return carbon.Time2Carbon(t.CreatedAt).AddSeconds(int(validFor / time.Second)).Carbon2Time()
}

// IsExpired reports whether now is strictly past CreatedAt + validFor.
func (t Token) IsExpired(now time.Time, validFor time.Duration) bool {
	return now.After(t.ExpiresAt(validFor))
}

type SecretGenerator interface {
	GenerateSecret() (Secret, error)
}

type SecretHasher interface {
	HashSecret(secret Secret) (SecretHash, error)
	ValidateSecret(secret Secret, hash SecretHash) bool
}
