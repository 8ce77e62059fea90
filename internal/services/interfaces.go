package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/sampledata"
	"fintrack/internal/summary"
)

// TransactionFilter holds optional filter parameters for listing transactions.
// Date bounds are inclusive.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Kind     *models.Kind
	Category *string
}

// Match reports whether t passes every set filter.
func (f TransactionFilter) Match(t models.Transaction) bool {
	if f.Kind != nil && t.Kind != *f.Kind {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.FromDate != nil && t.Date.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && t.Date.After(*f.ToDate) {
		return false
	}
	return true
}

// TransactionInput carries the fields of a new transaction. A nil Date
// means now.
type TransactionInput struct {
	Kind        models.Kind
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        *time.Time
}

// TransactionUpdate carries the fields to change on an existing
// transaction. Nil fields are left as they are.
type TransactionUpdate struct {
	Kind        *models.Kind
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, upd TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	ListAllTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(ctx context.Context, kind *models.Kind) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string, kind models.Kind, color, icon string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ResetCategories(ctx context.Context) ([]models.Category, error)
}

// SettingsUpdate carries the settings fields to change. Nil fields are left
// as they are.
type SettingsUpdate struct {
	WelcomeMessage *string
	Currency       *string
	DateFormat     *string
	Theme          *models.Theme
}

// SettingsServicer defines the contract for user preferences.
type SettingsServicer interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, upd SettingsUpdate) (*models.Settings, error)
	ResetSettings(ctx context.Context) (*models.Settings, error)
}

// ProfileServicer defines the contract for the onboarding profile.
type ProfileServicer interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	CompleteOnboarding(ctx context.Context, name string) (*models.Profile, error)
	ClearProfile(ctx context.Context) error
}

// SampleDataStatus reports whether demo mode is on and what is stored.
type SampleDataStatus struct {
	Enabled bool             `json:"enabled"`
	Stats   sampledata.Stats `json:"stats"`
}

// SampleDataServicer defines the contract for the demo data mode.
type SampleDataServicer interface {
	GetSampleDataStatus(ctx context.Context) (*SampleDataStatus, error)
	SetSampleMode(ctx context.Context, enabled bool) (*SampleDataStatus, error)
	EnsureSampleData(ctx context.Context) error
}

// SummaryServicer defines the contract for the aggregation read models.
type SummaryServicer interface {
	GetSummary(ctx context.Context, filter TransactionFilter) (*summary.FinancialSummary, error)
	GetMonthlyBucket(ctx context.Context, year int, month time.Month) (*summary.MonthlyBucket, error)
	GetMonthlyComparison(ctx context.Context, months int, reference time.Time) ([]summary.MonthlyComparison, error)
	DefaultComparisonMonths() int
}

// DataServicer defines the contract for wiping stored data.
type DataServicer interface {
	ClearAllData(ctx context.Context) error
}
