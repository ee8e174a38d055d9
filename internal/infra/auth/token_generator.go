package auth

import (
	"crypto/rand"
	"encoding/hex"

	"shopfront/internal/domain/service"

	"github.com/pkg/errors"
)

// sessionTokenBytes yields 64 hex characters, comfortably beyond brute force.
const sessionTokenBytes = 32

type randomTokenGenerator struct{}

// NewTokenGenerator returns a generator backed by crypto/rand.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns a new unguessable session token.
func (g *randomTokenGenerator) Generate() (string, error) {
	bytes := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return hex.EncodeToString(bytes), nil
}
