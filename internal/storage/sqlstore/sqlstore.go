// Package sqlstore implements storage.Gateway on top of gorm. Transactions
// and categories are rows carrying their list position; the settings
// document, the profile and the sample-data flag are JSON values in the
// kv_entries table.
package sqlstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fintrack/internal/models"
	"fintrack/internal/storage"
)

const batchSize = 100

// transactionRow is a transaction plus its position in the saved list.
type transactionRow struct {
	models.Transaction
	Position int `gorm:"not null;index"`
}

func (transactionRow) TableName() string { return "transactions" }

// categoryRow is a category plus its position in the saved list.
type categoryRow struct {
	models.Category
	Position int `gorm:"not null"`
}

func (categoryRow) TableName() string { return "categories" }

// Models lists the gorm models backing the store, for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&transactionRow{}, &categoryRow{}, &models.KVEntry{}}
}

// Store is a gorm-backed storage.Gateway.
type Store struct {
	db *gorm.DB
}

var _ storage.Gateway = (*Store)(nil)

// New creates a Store over an already migrated database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LoadTransactions returns the saved transaction list in order.
func (s *Store) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var rows []transactionRow
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	out := make([]models.Transaction, len(rows))
	for i := range rows {
		out[i] = rows[i].Transaction
	}
	return out, nil
}

// SaveTransactions replaces the stored list with transactions.
func (s *Store) SaveTransactions(ctx context.Context, transactions []models.Transaction) error {
	rows := make([]transactionRow, len(transactions))
	for i, t := range transactions {
		rows[i] = transactionRow{Transaction: t, Position: i}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&transactionRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	return nil
}

// LoadCategories returns the saved category list, or nil when nothing has
// been saved yet.
func (s *Store) LoadCategories(ctx context.Context) ([]models.Category, error) {
	saved, err := s.hasKey(ctx, storage.KeyCategories)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if !saved {
		return nil, nil
	}

	var rows []categoryRow
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	out := make([]models.Category, len(rows))
	for i := range rows {
		out[i] = rows[i].Category
	}
	return out, nil
}

// SaveCategories replaces the stored category list.
func (s *Store) SaveCategories(ctx context.Context, categories []models.Category) error {
	rows := make([]categoryRow, len(categories))
	for i, c := range categories {
		rows[i] = categoryRow{Category: c, Position: i}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&categoryRow{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, batchSize).Error; err != nil {
				return err
			}
		}
		// The marker row tells "saved empty" apart from "never saved".
		return putKV(tx, storage.KeyCategories, len(rows))
	})
	if err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

// LoadSettings returns the stored settings or nil.
func (s *Store) LoadSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	found, err := s.getKV(ctx, storage.KeySettings, &settings)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &settings, nil
}

// SaveSettings stores the settings document.
func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) error {
	if err := putKV(s.db.WithContext(ctx), storage.KeySettings, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LoadProfile returns the stored profile or storage.ErrNotFound.
func (s *Store) LoadProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	found, err := s.getKV(ctx, storage.KeyProfile, &profile)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return &profile, nil
}

// SaveProfile stores the onboarding profile.
func (s *Store) SaveProfile(ctx context.Context, profile models.Profile) error {
	if err := putKV(s.db.WithContext(ctx), storage.KeyProfile, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// ClearProfile forgets the onboarding profile.
func (s *Store) ClearProfile(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Delete(&models.KVEntry{}, "key = ?", storage.KeyProfile).Error; err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

// LoadSampleMode reports whether demo data mode is on.
func (s *Store) LoadSampleMode(ctx context.Context) (bool, error) {
	var enabled bool
	if _, err := s.getKV(ctx, storage.KeySampleMode, &enabled); err != nil {
		return false, fmt.Errorf("load sample mode: %w", err)
	}
	return enabled, nil
}

// SaveSampleMode stores the demo data flag.
func (s *Store) SaveSampleMode(ctx context.Context, enabled bool) error {
	if err := putKV(s.db.WithContext(ctx), storage.KeySampleMode, enabled); err != nil {
		return fmt.Errorf("save sample mode: %w", err)
	}
	return nil
}

// Clear removes transactions, categories and settings in one transaction.
func (s *Store) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&transactionRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&categoryRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.KVEntry{}, "key IN ?", []string{storage.KeyCategories, storage.KeySettings}).Error
	})
	if err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return nil
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) hasKey(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.KVEntry{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) getKV(ctx context.Context, key string, dst interface{}) (bool, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(entry.Value), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func putKV(db *gorm.DB, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	entry := models.KVEntry{Key: key, Value: string(data)}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
