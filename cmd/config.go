package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr selects the Redis event bus. Empty runs the in-process bus,
	// which only serves subscribers of this instance.
	RedisAddr     string
	RedisPassword string
	RedisDB       string

	// MongoURI enables the order audit trail. Empty disables it.
	MongoURI      string
	MongoDatabase string

	LogLevel             string
	NotifyBuffer         string
	DelayedOrderSchedule string
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// Port falls back to 8080.
func (c Config) Port() string {
	if c.HTTPPort == "" {
		return "8080"
	}
	return c.HTTPPort
}

func (c Config) RedisDatabase() (int, error) {
	if c.RedisDB == "" {
		return 0, nil
	}
	db, err := strconv.Atoi(c.RedisDB)
	if err != nil {
		return 0, fmt.Errorf("REDIS_DB: %w", err)
	}
	return db, nil
}

func (c Config) MongoDatabaseName() string {
	if c.MongoDatabase == "" {
		return "fooddelivery"
	}
	return c.MongoDatabase
}

// NotifyQueueSize is the capacity of the notification queue. Zero selects the
// dispatcher default.
func (c Config) NotifyQueueSize() (int, error) {
	if c.NotifyBuffer == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(c.NotifyBuffer)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("NOTIFY_BUFFER must be a non negative integer, got %q", c.NotifyBuffer)
	}
	return n, nil
}

// Level maps LOG_LEVEL onto slog. Unknown values mean info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
