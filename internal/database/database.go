package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/logger"
	"fintrack/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager handles database operations for the SQL storage drivers.
type Manager struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewManager opens the database selected by cfg.StorageDriver.
func NewManager(cfg *config.Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.StoragePostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
		})
	default:
		return nil, fmt.Errorf("storage driver %q is not backed by a SQL database", cfg.StorageDriver)
	}

	logLevel := gormlogger.Warn
	if cfg.Env == "production" {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.StorageDriver == config.StorageSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &Manager{db: db, cfg: cfg}, nil
}

// RunMigrations applies pending SQL migrations from the embedded set.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := NewMigrate(m.cfg)
	if err != nil {
		return err
	}
	defer CloseMigrate(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewMigrate builds a migrate instance for the configured SQL driver using
// the embedded migrations of the matching dialect.
func NewMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		src, err := migrations.Source(migrations.Postgres)
		if err != nil {
			return nil, err
		}
		mig, err := migrate.NewWithSourceInstance("iofs", src, cfg.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return mig, nil

	case config.StorageSQLite:
		src, err := migrations.Source(migrations.SQLite)
		if err != nil {
			return nil, err
		}

		// A separate connection keeps migrate from closing the app's pool.
		migrateDB, err := sql.Open("sqlite3", cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open migration database: %w", err)
		}
		driver, err := sqlite3.WithInstance(migrateDB, &sqlite3.Config{})
		if err != nil {
			_ = migrateDB.Close()
			return nil, fmt.Errorf("create sqlite driver: %w", err)
		}
		mig, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
		if err != nil {
			return nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return mig, nil

	default:
		return nil, fmt.Errorf("storage driver %q has no SQL migrations", cfg.StorageDriver)
	}
}

// CloseMigrate closes a migrate instance, logging close errors.
func CloseMigrate(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}
