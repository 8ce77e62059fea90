// Package redisstore implements storage.Gateway on Redis. Every entity kind
// is a JSON document under its fixed key, optionally namespaced by a prefix.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fintrack/internal/models"
	"fintrack/internal/storage"
)

// Store is a Redis-backed storage.Gateway.
type Store struct {
	client *redis.Client
	prefix string
}

var _ storage.Gateway = (*Store)(nil)

// New wraps an existing client. prefix is prepended to every key.
func New(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Connect parses url, opens a client and pings it.
func Connect(ctx context.Context, url, prefix string) (*Store, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		// Fallback to a bare host:port address
		opt = &redis.Options{Addr: url}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return New(client, prefix), nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// LoadTransactions returns the saved transaction list in order.
func (s *Store) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if _, err := s.get(ctx, storage.KeyTransactions, &txs); err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// SaveTransactions replaces the stored list with transactions.
func (s *Store) SaveTransactions(ctx context.Context, transactions []models.Transaction) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if err := s.set(ctx, storage.KeyTransactions, transactions); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	return nil
}

// LoadCategories returns the saved category list, or nil when nothing has
// been saved yet.
func (s *Store) LoadCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	found, err := s.get(ctx, storage.KeyCategories, &cats)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if !found {
		return nil, nil
	}
	if cats == nil {
		cats = []models.Category{}
	}
	return cats, nil
}

// SaveCategories replaces the stored category list.
func (s *Store) SaveCategories(ctx context.Context, categories []models.Category) error {
	if categories == nil {
		categories = []models.Category{}
	}
	if err := s.set(ctx, storage.KeyCategories, categories); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

// LoadSettings returns the stored settings or nil.
func (s *Store) LoadSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	found, err := s.get(ctx, storage.KeySettings, &settings)
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
	if err := s.set(ctx, storage.KeySettings, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LoadProfile returns the stored profile or storage.ErrNotFound.
func (s *Store) LoadProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	found, err := s.get(ctx, storage.KeyProfile, &profile)
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
	if err := s.set(ctx, storage.KeyProfile, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// ClearProfile forgets the onboarding profile.
func (s *Store) ClearProfile(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key(storage.KeyProfile)).Err(); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

// LoadSampleMode reports whether demo data mode is on.
func (s *Store) LoadSampleMode(ctx context.Context) (bool, error) {
	var enabled bool
	if _, err := s.get(ctx, storage.KeySampleMode, &enabled); err != nil {
		return false, fmt.Errorf("load sample mode: %w", err)
	}
	return enabled, nil
}

// SaveSampleMode stores the demo data flag.
func (s *Store) SaveSampleMode(ctx context.Context, enabled bool) error {
	if err := s.set(ctx, storage.KeySampleMode, enabled); err != nil {
		return fmt.Errorf("save sample mode: %w", err)
	}
	return nil
}

// Clear removes transactions, settings and categories.
func (s *Store) Clear(ctx context.Context) error {
	keys := make([]string, len(storage.ClearedKeys))
	for i, k := range storage.ClearedKeys {
		keys[i] = s.key(k)
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.client.Set(ctx, s.key(key), data, 0).Err()
}
