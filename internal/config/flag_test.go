package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-b", "pgx",
		"-d", "postgres://u:p@localhost:5432/securechat",
		"-s", "another-secret",
		"-t", "30",
		"-i", "210000",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "pgx", c.DatabaseDriver)
	assert.Equal(t, "postgres://u:p@localhost:5432/securechat", c.DatabaseDSN)
	assert.Equal(t, "another-secret", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.SessionTokenValidity)
	assert.Equal(t, 210000, c.HashIterations)
}

func TestParseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, 12*time.Hour, c.SessionTokenValidity)
}
