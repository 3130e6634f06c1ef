package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// LinkTokenSize is the number of random bytes in a message link token.
const LinkTokenSize = 32

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time ordered v7 UUID, falling back to v4.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

// GenerateLinkToken returns LinkTokenSize random bytes encoded as URL-safe
// base64 without padding.
func GenerateLinkToken() (string, error) {
	buf := make([]byte, LinkTokenSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate link token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
