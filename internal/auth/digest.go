package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSensitive returns a one-way hex digest for values that must never be
// stored in the clear (card numbers, CVVs). It is a storage-avoidance digest,
// not a password hash: unsalted and fast, with a deliberately weaker guarantee
// than HashPassword.
func HashSensitive(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
