package testutil_test

import (
	"testing"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/testutil"

	"github.com/shopspring/decimal"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	var count int64
	for _, table := range []string{"transactions", "categories", "kv_entries"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	a := testutil.NewTransaction(models.KindIncome, "1000", "Salary", testutil.Date(2024, 1, 15))
	b := testutil.NewTransaction(models.KindIncome, "1000", "Salary", testutil.Date(2024, 1, 15))
	if a.ID == b.ID {
		t.Error("fixtures should get unique ids")
	}
	if !a.Amount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected amount 1000, got %s", a.Amount)
	}

	c := testutil.NewCategory(models.KindExpense)
	if c.Kind != models.KindExpense {
		t.Errorf("expected expense category, got %s", c.Kind)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrTransactionNotFound, "custom message")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

func TestAssertDecimal(t *testing.T) {
	testutil.AssertDecimal(t, decimal.RequireFromString("10.50"), "10.5")
}
