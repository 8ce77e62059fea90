package summary

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, time.February, time.UTC)

	if want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("expected start %s, got %s", want, start)
	}
	if want := time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC); !end.Equal(want) {
		t.Errorf("expected end %s, got %s", want, end)
	}
}

func TestComputeMonthlyBucket(t *testing.T) {
	loc := time.UTC
	firstInstant := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	lastInstant := time.Date(2024, 5, 31, 23, 59, 59, 999999999, loc)

	transactions := []models.Transaction{
		tx(models.KindIncome, "3000", "Salary", firstInstant),
		tx(models.KindExpense, "120", "Food & Dining", time.Date(2024, 5, 14, 19, 30, 0, 0, loc)),
		tx(models.KindExpense, "80", "Transportation", lastInstant),
		tx(models.KindExpense, "999", "Travel", time.Date(2024, 6, 1, 0, 0, 0, 0, loc)),
		tx(models.KindIncome, "50", "Gift", time.Date(2024, 4, 30, 23, 59, 59, 0, loc)),
	}

	b := ComputeMonthlyBucket(transactions, time.May, 2024, loc)

	if b.Month != "May" || b.Year != 2024 {
		t.Errorf("expected May 2024, got %s %d", b.Month, b.Year)
	}
	if len(b.Transactions) != 3 {
		t.Fatalf("expected 3 transactions in May, got %d", len(b.Transactions))
	}
	if !b.TotalIncome.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected income 3000, got %s", b.TotalIncome)
	}
	if !b.TotalExpense.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected expense 200, got %s", b.TotalExpense)
	}
	if !b.NetAmount.Equal(decimal.NewFromInt(2800)) {
		t.Errorf("expected net 2800, got %s", b.NetAmount)
	}
}

func TestComputeMonthlyBucketLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	// 2024-03-31T20:00Z is already April 1st in IST.
	late := tx(models.KindExpense, "10", "Food & Dining", time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC))

	march := ComputeMonthlyBucket([]models.Transaction{late}, time.March, 2024, kolkata)
	april := ComputeMonthlyBucket([]models.Transaction{late}, time.April, 2024, kolkata)

	if len(march.Transactions) != 0 {
		t.Errorf("expected no March transactions in IST, got %d", len(march.Transactions))
	}
	if len(april.Transactions) != 1 {
		t.Errorf("expected the transaction in April IST, got %d", len(april.Transactions))
	}
}

func TestComputeMonthlyBucketEmpty(t *testing.T) {
	b := ComputeMonthlyBucket(nil, time.January, 2023, time.UTC)

	if b.Transactions == nil || len(b.Transactions) != 0 {
		t.Errorf("expected empty non-nil transactions, got %#v", b.Transactions)
	}
	if !b.NetAmount.IsZero() {
		t.Errorf("expected zero net, got %s", b.NetAmount)
	}
}

func TestComputeMonthlyComparison(t *testing.T) {
	loc := time.UTC
	var transactions []models.Transaction
	for m := time.January; m <= time.June; m++ {
		transactions = append(transactions,
			tx(models.KindIncome, "1000", "Salary", time.Date(2024, m, 1, 9, 0, 0, 0, loc)),
			tx(models.KindExpense, "100", "Food & Dining", time.Date(2024, m, 28, 9, 0, 0, 0, loc)),
		)
	}
	transactions = append(transactions, tx(models.KindExpense, "5", "Other", time.Date(2023, 12, 31, 23, 0, 0, 0, loc)))

	series, err := ComputeMonthlyComparison(transactions, 6, time.Date(2024, 6, 15, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var labels []string
	for _, entry := range series {
		labels = append(labels, entry.MonthYear)
	}
	want := []string{"Jan 2024", "Feb 2024", "Mar 2024", "Apr 2024", "May 2024", "Jun 2024"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("expected labels %v, got %v", want, labels)
	}

	for i, entry := range series {
		if len(entry.Transactions) != 2 {
			t.Errorf("%s: expected 2 transactions, got %d", entry.MonthYear, len(entry.Transactions))
		}
		for _, tr := range entry.Transactions {
			if tr.Date.Month() != time.Month(i+1) || tr.Date.Year() != 2024 {
				t.Errorf("%s: transaction dated %s leaked into bucket", entry.MonthYear, tr.Date)
			}
		}
		if !entry.NetAmount.Equal(decimal.NewFromInt(900)) {
			t.Errorf("%s: expected net 900, got %s", entry.MonthYear, entry.NetAmount)
		}
	}
}

func TestComputeMonthlyComparisonCrossesYear(t *testing.T) {
	series, err := ComputeMonthlyComparison(nil, 3, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Dec 2024", "Jan 2025", "Feb 2025"}
	for i, entry := range series {
		if entry.MonthYear != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], entry.MonthYear)
		}
	}
	if series[0].Month != "December" || series[0].Year != 2024 {
		t.Errorf("expected December 2024 first, got %s %d", series[0].Month, series[0].Year)
	}
}

func TestComputeMonthlyComparisonWindow(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("zero_window", func(t *testing.T) {
		series, err := ComputeMonthlyComparison(nil, 0, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(series) != 0 {
			t.Errorf("expected empty series, got %d entries", len(series))
		}
	})

	t.Run("negative_window", func(t *testing.T) {
		_, err := ComputeMonthlyComparison(nil, -1, ref)
		if !errors.Is(err, apperrors.ErrInvalidWindow) {
			t.Errorf("expected ErrInvalidWindow, got %v", err)
		}
	})

	t.Run("single_month", func(t *testing.T) {
		series, err := ComputeMonthlyComparison(nil, 1, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(series) != 1 || series[0].MonthYear != "Jun 2024" {
			t.Errorf("expected only Jun 2024, got %+v", series)
		}
	})
}
