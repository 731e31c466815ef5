// Package models defines the persistent entities of the messaging core.
package models

import "time"

// Account is a registered user. Rows are created once at registration and
// never mutated; PasswordHash and Salt are opaque to everything but the
// account directory.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}
