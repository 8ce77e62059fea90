// Package storage defines the gateway the services persist through. Each
// entity kind is loaded and saved as a whole, mirroring a key-value store:
// the transaction list, the category list, the settings document, the
// onboarding profile and the sample-data flag.
package storage

import (
	"context"
	"errors"

	"fintrack/internal/models"
)

// Keys under which each entity kind is stored by key-value backends.
const (
	KeyTransactions = "finance-tracker-transactions"
	KeySettings     = "finance-tracker-settings"
	KeyCategories   = "finance-tracker-categories"
	KeyProfile      = "finance-tracker-user"
	KeySampleMode   = "finance-tracker-sample-mode"
)

// ClearedKeys lists what Clear removes. The profile and the sample-data flag
// survive a clear.
var ClearedKeys = []string{KeyTransactions, KeySettings, KeyCategories}

// ErrNotFound is returned by LoadProfile when onboarding never completed.
var ErrNotFound = errors.New("storage: not found")

// Gateway persists the tracker's entities.
//
// Lists come back in the order they were saved. Loading a list that was
// never saved yields an empty slice (categories: nil, so callers can tell
// "nothing stored" from "stored empty" and apply defaults). LoadSettings
// returns nil when nothing was saved.
type Gateway interface {
	LoadTransactions(ctx context.Context) ([]models.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []models.Transaction) error

	LoadCategories(ctx context.Context) ([]models.Category, error)
	SaveCategories(ctx context.Context, categories []models.Category) error

	LoadSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error

	LoadProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) error
	ClearProfile(ctx context.Context) error

	LoadSampleMode(ctx context.Context) (bool, error)
	SaveSampleMode(ctx context.Context, enabled bool) error

	// Clear removes transactions, settings and categories.
	Clear(ctx context.Context) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
