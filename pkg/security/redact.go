package security

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "***"
	}
	first := []rune(local)[0]
	return string(first) + "***@" + domain
}

// HashValue creates a short SHA256 fingerprint of a value (for correlating logs without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
