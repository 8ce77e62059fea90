package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/server"
	"fintrack/internal/services"
	"fintrack/internal/storage"
	"fintrack/internal/storage/redisstore"
	"fintrack/internal/storage/sqlstore"
	"fintrack/internal/validator"
)

// @title           Fintrack API
// @version         1.0
// @description     Personal finance tracker: transactions, categories and monthly summaries.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

const storageCheckInterval = 30 * time.Second

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	validator.Register()

	svc := services.New(gw, services.Options{
		Location:         cfg.Location,
		ComparisonMonths: cfg.ComparisonMonths,
	})
	if err := svc.SampleData.EnsureSampleData(ctx); err != nil {
		return fmt.Errorf("failed to load sample data: %w", err)
	}

	router := server.NewRouter(server.Deps{
		Services:    svc,
		Storage:     gw,
		Location:    cfg.Location,
		CORSOrigins: cfg.CORSOrigins,
		APIKey:      cfg.APIKey,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("starting server", "port", cfg.Port, "storage", cfg.StorageDriver)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		return server.Run(gctx, ":"+cfg.Port, router, cfg.ShutdownTimeout)
	})
	g.Go(func() error {
		return server.WatchStorage(gctx, gw, storageCheckInterval)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// openStorage connects the configured backend and returns it with its
// cleanup function.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Gateway, func(), error) {
	log := logger.Get()

	if cfg.StorageDriver == config.StorageRedis {
		store, err := redisstore.Connect(ctx, cfg.RedisURL, cfg.RedisKeyPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warnw("redis close error", "error", err)
			}
		}, nil
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		_ = dbManager.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	return sqlstore.New(dbManager.DB()), func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("database close error", "error", err)
		}
	}, nil
}
