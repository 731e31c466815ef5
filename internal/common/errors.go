// Package common defines shared constants and sentinel errors used across
// securechat layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound          = errors.New("not found")
	ErrorDuplicateUsername = errors.New("username already taken")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential verification failed. Deliberately covers both an unknown
	// username and a wrong password so callers cannot tell which it was.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Cipher errors (malformed, truncated, or tampered payload).
	ErrorCiphertextInvalid = errors.New("ciphertext invalid")

	// Hashing errors (entropy source failure, nothing else).
	ErrorHashing = errors.New("password hashing failed")

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")
)
