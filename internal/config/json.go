package config

import (
	"encoding/json"
	"os"
	"time"

	"securechat/internal/flagx"
	"securechat/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. Fields are pointers so
// that keys absent from the file can be told apart from zero values: only
// keys present in the file override the running Config, which keeps partial
// config files usable. Interval fields use timex.Duration, which parses both
// string values such as "12h" and integer nanoseconds.
type JsonConfig struct {
	DatabaseDriver       *string         `json:"database_driver"`
	DatabaseDSN          *string         `json:"database_dsn"`
	MessageKey           *string         `json:"message_key"`
	SecretKey            *string         `json:"secret_key"`
	SessionTokenValidity *timex.Duration `json:"session_token_validity"`
	HashIterations       *int            `json:"hash_iterations"`
}

// parseJson overlays configuration values from the JSON file named by the
// -c or -config command-line flags. If neither flag is set, nothing is
// loaded. If the file cannot be read or contains invalid JSON, the function
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDriver != nil {
		config.DatabaseDriver = *c.DatabaseDriver
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.MessageKey != nil {
		config.MessageKey = *c.MessageKey
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionTokenValidity != nil {
		config.SessionTokenValidity = time.Duration(c.SessionTokenValidity.Duration)
	}
	if c.HashIterations != nil {
		config.HashIterations = *c.HashIterations
	}
}
