package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/storage"

	"github.com/shopspring/decimal"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTransaction builds an unsaved transaction with a unique id and
// description.
func NewTransaction(kind models.Kind, amount string, category string, date time.Time) models.Transaction {
	n := nextID()
	return models.Transaction{
		Base:        models.Base{ID: fmt.Sprintf("tx-%d", n)},
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: fmt.Sprintf("Test transaction %d", n),
		Date:        date,
	}
}

// SeedTransactions saves txs through the gateway, replacing whatever was
// stored before.
func SeedTransactions(t *testing.T, gw storage.Gateway, txs ...models.Transaction) []models.Transaction {
	t.Helper()

	if err := gw.SaveTransactions(context.Background(), txs); err != nil {
		t.Fatalf("failed to seed transactions: %v", err)
	}
	return txs
}

// NewCategory builds a category with a unique id and name.
func NewCategory(kind models.Kind) models.Category {
	n := nextID()
	return models.Category{
		ID:    fmt.Sprintf("cat-%d", n),
		Name:  fmt.Sprintf("Test Category %d", n),
		Kind:  kind,
		Color: "#3b82f6",
		Icon:  "Tag",
	}
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
