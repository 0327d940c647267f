package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	c := Config{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "secret", DBName: "orders"}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=orders sslmode=disable", c.DSN())

	c.DBSslMode = "require"
	assert.Contains(t, c.DSN(), "sslmode=require")
}

func TestConfig_Defaults(t *testing.T) {
	var c Config

	assert.Equal(t, "8080", c.Port())
	assert.Equal(t, "fooddelivery", c.MongoDatabaseName())
	assert.Equal(t, slog.LevelInfo, c.Level())

	db, err := c.RedisDatabase()
	require.NoError(t, err)
	assert.Zero(t, db)

	size, err := c.NotifyQueueSize()
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestConfig_InvalidNumbers(t *testing.T) {
	c := Config{RedisDB: "one", NotifyBuffer: "-1"}

	_, err := c.RedisDatabase()
	assert.Error(t, err)

	_, err = c.NotifyQueueSize()
	assert.Error(t, err)
}

func TestConfig_Level(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "DEBUG"}.Level())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.Level())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.Level())
}
