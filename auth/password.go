package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
)

var hexDigest = regexp.MustCompile(`^[a-f0-9]{64}$`)

// HashPassword returns the SHA-256 hex digest of the password. The empty
// password hashes to the empty string so that blank seed accounts never
// collide with a real digest.
func HashPassword(password string) string {
	if password == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// LegacyHash is the insecure 32-bit rolling hash older deployments stored
// when no digest primitive was present. Kept only so logins against
// un-migrated records still verify; never used for new passwords.
func LegacyHash(password string) string {
	var hash int32
	for _, r := range password {
		hash = (hash << 5) - hash + int32(r)
	}
	if hash < 0 {
		hash = -hash
	}
	return fmt.Sprintf("legacy-%d", hash)
}

// IsHashed reports whether stored is already a SHA-256 hex digest.
func IsHashed(stored string) bool {
	return hexDigest.MatchString(stored)
}

// VerifyPassword checks a plaintext candidate against a stored credential,
// which may be a digest or a legacy-prefixed fallback hash.
func VerifyPassword(stored, password string) bool {
	if stored == "" {
		return false
	}
	if IsHashed(stored) {
		return stored == HashPassword(password)
	}
	return stored == LegacyHash(password)
}
