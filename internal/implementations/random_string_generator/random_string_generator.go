package randomstringgenerator

import (
	passwordreset "blogapi/internal/core/domain/password_reset"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	ALPHABET      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	SECRET_LENGTH = 60
)

// Generator draws from crypto/rand through nanoid.
type Generator struct {
	alphabet string
	length   int
}

func NewGenerator() *Generator {
	return &Generator{alphabet: ALPHABET, length: SECRET_LENGTH}
}

func (g *Generator) GenerateSecret() (passwordreset.Secret, error) {
	s, err := gonanoid.Generate(g.alphabet, g.length)
	if err != nil {
		return "", err
	}
	return passwordreset.Secret(s), nil
}
