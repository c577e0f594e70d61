package passwordhasher

import (
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/core/domain/user"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords peppered with the application secret. The password is
// folded through HMAC-SHA256 first so inputs longer than bcrypt's 72 bytes still
// count in full.
type Bcrypt struct {
	secret string
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	return &Bcrypt{secret: secret, cost: cost}
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (hash user.PasswordHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword(h.prehash(password), h.cost)
	if err != nil {
		return hash, err
	}
	return user.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), h.prehash(password))
	return err == nil
}

func (h *Bcrypt) prehash(password user.RawPassword) []byte {
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(mac.Sum(nil)))
}

// BcryptSecretHasher hashes password reset secrets. Secrets are short enough
// for bcrypt and carry their own entropy, so no pepper is applied.
type BcryptSecretHasher struct {
	cost int
}

func NewBcryptSecretHasher(cost int) *BcryptSecretHasher {
	return &BcryptSecretHasher{cost: cost}
}

func (h *BcryptSecretHasher) HashSecret(secret passwordreset.Secret) (hash passwordreset.SecretHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return hash, err
	}
	return passwordreset.SecretHash(bcryptHash), nil
}

func (h *BcryptSecretHasher) ValidateSecret(secret passwordreset.Secret, hash passwordreset.SecretHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
