// Package passhash implements salted password hashing for account credentials.
//
// Two digest schemes are provided. SHA256Hasher is a single-pass salted
// SHA-256, kept for compatibility with databases written by earlier versions.
// PBKDF2Hasher adds a configurable iteration count and is what new
// deployments should use (hash_iterations > 0 in the config). A deployment
// must keep whichever scheme its accounts were registered with.
package passhash

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"securechat/internal/common"
)

// SaltSize is the number of random bytes drawn per account salt.
const SaltSize = 16

// Hasher derives a password digest from a password and a per-account salt.
// Hash is deterministic for a given (password, salt) pair.
type Hasher interface {
	Hash(password, salt string) string
}

// GenerateSalt returns a fresh random salt, base64-encoded. The only failure
// mode is an unreadable system entropy source.
func GenerateSalt() (string, error) {
	b, err := common.GenerateRandByteArray(SaltSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorHashing, err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// SHA256Hasher is the legacy scheme: base64(SHA-256(salt ‖ password)).
// It defeats precomputed dictionaries across accounts but has no work factor.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// PBKDF2Hasher derives a 32-byte digest with PBKDF2-HMAC-SHA256 and the
// configured iteration count.
type PBKDF2Hasher struct {
	Iterations int
}

func (h PBKDF2Hasher) Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), h.Iterations, 32, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// New returns the hasher matching the configured iteration count:
// 0 selects the legacy single-pass scheme, anything above selects PBKDF2.
func New(iterations int) Hasher {
	if iterations > 0 {
		return PBKDF2Hasher{Iterations: iterations}
	}
	return SHA256Hasher{}
}
