package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/api"
	"fooddelivery/cmd"
	"fooddelivery/docs"
	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/membus"
	"fooddelivery/internal/adapters/out/mongoaudit"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/redisbus"
	"fooddelivery/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func getConfigs() cmd.Config {
	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:              os.Getenv("REDIS_DB"),
		MongoURI:             os.Getenv("MONGO_URI"),
		MongoDatabase:        os.Getenv("MONGO_DATABASE"),
		LogLevel:             os.Getenv("LOG_LEVEL"),
		NotifyBuffer:         os.Getenv("NOTIFY_BUFFER"),
		DelayedOrderSchedule: os.Getenv("DELAYED_ORDER_SCHEDULE"),
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := openDatabase(configs)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	events, closeEvents, err := openEventBus(ctx, configs, logger)
	if err != nil {
		return fmt.Errorf("open event bus: %w", err)
	}
	defer closeEvents()

	audit, closeAudit, err := openAuditLog(ctx, configs)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer closeAudit()

	app, err := cmd.NewCompositionRoot(configs, gormDB, events, audit, logger)
	if err != nil {
		return err
	}

	notifier := app.Notifier()
	notifier.Start()
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if closeErr := notifier.Close(closeCtx); closeErr != nil {
			logger.Warn("Notification queue not drained", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e, err := newWebServer(app, configs, logger)
	if err != nil {
		return err
	}
	return startWebServer(ctx, e, configs.Port(), logger)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	return gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// openEventBus uses Redis when REDIS_ADDR is set and the in-process bus otherwise.
func openEventBus(ctx context.Context, configs cmd.Config, logger *slog.Logger) (ports.EventBus, func(), error) {
	if configs.RedisAddr == "" {
		logger.Info("REDIS_ADDR is empty, order events stay in process")
		bus := membus.New(0, logger)
		return bus, bus.Close, nil
	}

	db, err := configs.RedisDatabase()
	if err != nil {
		return nil, nil, err
	}
	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       db,
	})
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return redisbus.New(client, "fooddelivery", logger), func() { _ = client.Close() }, nil
}

// openAuditLog returns a nil AuditLog when MONGO_URI is empty.
func openAuditLog(ctx context.Context, configs cmd.Config) (ports.AuditLog, func(), error) {
	if configs.MongoURI == "" {
		return nil, func() {}, nil
	}

	client, err := mongoaudit.Connect(ctx, configs.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	disconnect := func() { _ = client.Disconnect(context.Background()) }

	audit := mongoaudit.New(client.Database(configs.MongoDatabaseName()), "")
	if err = audit.EnsureIndexes(ctx); err != nil {
		disconnect()
		return nil, nil, err
	}
	return audit, disconnect, nil
}

func newWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Spec()
	if err != nil {
		return nil, fmt.Errorf("load openapi: %w", err)
	}
	if err = docs.Register(); err != nil {
		return nil, fmt.Errorf("register swagger: %w", err)
	}

	e, err := httpadapter.NewEcho(app.CreateHTTPServer(), doc, logger)
	if err != nil {
		return nil, err
	}
	e.Logger.SetLevel(echoLogLevel(configs.Level()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e, nil
}

func echoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level >= slog.LevelError:
		return log.ERROR
	case level >= slog.LevelWarn:
		return log.WARN
	default:
		return log.INFO
	}
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
