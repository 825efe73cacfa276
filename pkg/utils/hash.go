package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// NormalizeEmail trims and lowercases an address so equal mailboxes compare equal
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashEmail is the form in which visitor addresses appear in logs
func HashEmail(email string) string {
	return HashString(NormalizeEmail(email))
}
