package id

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// GenerateID creates a random UUID for correlating a request across logs.
func GenerateID() string {
	return uuid.NewString()
}

// Valid reports whether s looks like an id a client may propagate, so an
// inbound X-Request-ID header is only reused when it is a UUID.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Fingerprint derives a short stable token from a personal identifier such
// as an email address, for logs that must not carry the identifier itself.
func Fingerprint(s string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(s))))
	return hex.EncodeToString(sum[:6])
}
