// Package config handles configuration for the securechat client,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"encoding/base64"
	"fmt"
	"time"
)

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDriver: "pgx" for PostgreSQL or "sqlite" for the embedded store.
//   - DatabaseDSN: DSN for the chosen driver.
//   - MessageKey: base64 of the 32-byte AES-256 message key. The default is
//     the historical development key and must be overridden in any real
//     deployment.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - SessionTokenValidity: session token lifetime.
//   - HashIterations: PBKDF2 iteration count for password hashing;
//     0 selects the legacy single-pass salted SHA-256 scheme.
type Config struct {
	DatabaseDriver       string
	DatabaseDSN          string
	MessageKey           string
	SecretKey            string
	SessionTokenValidity time.Duration
	HashIterations       int
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "securechat.db"
	c.MessageKey = "VGhpc0lzQVNlY3JldEtleTEyMzQ1Njc4OTAxMjM0NTY="
	c.SecretKey = "secretKey"
	c.SessionTokenValidity = 12 * time.Hour
	c.HashIterations = 0
}

// MessageKeyBytes decodes and validates the configured message key.
func (c *Config) MessageKeyBytes() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(c.MessageKey)
	if err != nil {
		return nil, fmt.Errorf("message key is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("message key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
