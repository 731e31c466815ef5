package config

import (
	"flag"
	"os"
	"time"

	"securechat/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   database driver ("pgx" or "sqlite")
//	-d string   database DSN
//	-k string   message key (base64, 32 bytes decoded)
//	-s string   session token HMAC secret
//	-t int      session token validity, minutes
//	-i int      PBKDF2 iterations (0 = legacy salted SHA-256)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-k", "-s", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "b", config.DatabaseDriver, "database driver (pgx or sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MessageKey, "k", config.MessageKey, "message key (base64)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTokenValidity := fs.Int("t", int(config.SessionTokenValidity.Minutes()), "session_token_validity (in minutes)")
	fs.IntVar(&config.HashIterations, "i", config.HashIterations, "password hash iterations")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTokenValidity = time.Duration(*sessionTokenValidity) * time.Minute
}
