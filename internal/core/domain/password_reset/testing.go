package passwordreset

import (
	c "blogapi/internal/core/domain/common"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

type FakeRepository struct {
	Tokens      map[c.Email]Token
	Replaced    []Token
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Tokens: make(map[c.Email]Token)}
}

func (r *FakeRepository) Replace(ctx context.Context, input ReplaceInput) (t Token, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not replace password reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t = Token{Email: input.Email, SecretHash: input.SecretHash, CreatedAt: input.CreatedAt}
	r.Tokens[input.Email] = t
	r.Replaced = append(r.Replaced, t)
	return t, nil
}

func (r *FakeRepository) GetByEmail(ctx context.Context, email c.Email) (t Token, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not get password reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t, ok := r.Tokens[email]
	if !ok {
		return t, ErrTokenDoesNotExist
	}
	return t, nil
}

func (r *FakeRepository) GetByEmailForUpdate(ctx context.Context, email c.Email) (Token, error) {
	return r.GetByEmail(ctx, email)
}

func (r *FakeRepository) DeleteByEmail(ctx context.Context, email c.Email) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete password reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.Tokens[email]; !ok {
		return 0, nil
	}
	delete(r.Tokens, email)
	return 1, nil
}

func (r *FakeRepository) DeleteCreatedBefore(ctx context.Context, before time.Time) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete password reset tokens")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	count := int64(0)
	for email, t := range r.Tokens {
		if t.CreatedAt.Before(before) {
			delete(r.Tokens, email)
			count++
		}
	}
	return count, nil
}

func (r *FakeRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Tokens)
}

type FakeNotification struct {
	Email  c.Email
	Secret Secret
}

type FakeNotifier struct {
	Sent        []FakeNotification
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) Notify(ctx context.Context, email c.Email, secret Secret) error {
	if n.ReturnError {
		return fmt.Errorf("could not notify %s", email)
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Sent = append(n.Sent, FakeNotification{Email: email, Secret: secret})
	return nil
}

func (n *FakeNotifier) SentCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return len(n.Sent)
}

func (n *FakeNotifier) LastSent() FakeNotification {
	n.lock.Lock()
	defer n.lock.Unlock()
	l := len(n.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return n.Sent[l-1]
}

// FakeSecretGenerator yields distinct secrets: a fixed prefix and a counter.
type FakeSecretGenerator struct {
	Prefix      string
	ReturnError bool
	counter     int
	lock        sync.Mutex
}

func NewFakeSecretGenerator(prefix string) *FakeSecretGenerator {
	return &FakeSecretGenerator{Prefix: prefix}
}

func (g *FakeSecretGenerator) GenerateSecret() (Secret, error) {
	if g.ReturnError {
		return "", fmt.Errorf("could not generate secret")
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	g.counter++
	return Secret(fmt.Sprintf("%s-%d", g.Prefix, g.counter)), nil
}

type FakeSecretHasher struct {
	ReturnError bool
}

func NewFakeSecretHasher() *FakeSecretHasher {
	return &FakeSecretHasher{}
}

func (h *FakeSecretHasher) HashSecret(secret Secret) (SecretHash, error) {
	if h.ReturnError {
		return "", fmt.Errorf("could not hash secret")
	}
	return SecretHash("hashed:" + reverse(string(secret))), nil
}

func (h *FakeSecretHasher) ValidateSecret(secret Secret, hash SecretHash) bool {
	return strings.TrimPrefix(string(hash), "hashed:") == reverse(string(secret))
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
