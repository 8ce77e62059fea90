package summary

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

func tx(kind models.Kind, amount string, category string, date time.Time) models.Transaction {
	return models.Transaction{
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: category,
		Date:        date,
	}
}

func TestComputeSummary(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty_input", func(t *testing.T) {
		s := ComputeSummary(nil)

		if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.NetAmount.IsZero() {
			t.Errorf("expected zero totals, got %s/%s/%s", s.TotalIncome, s.TotalExpense, s.NetAmount)
		}
		if s.TransactionCount != 0 {
			t.Errorf("expected count 0, got %d", s.TransactionCount)
		}
		if s.CategoryBreakdown == nil || len(s.CategoryBreakdown) != 0 {
			t.Errorf("expected empty non-nil breakdown, got %#v", s.CategoryBreakdown)
		}
	})

	t.Run("salary_and_food", func(t *testing.T) {
		s := ComputeSummary([]models.Transaction{
			tx(models.KindIncome, "1000", "Salary", now),
			tx(models.KindExpense, "400", "Food", now),
			tx(models.KindExpense, "100", "Food", now),
		})

		if !s.TotalIncome.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected income 1000, got %s", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected expense 500, got %s", s.TotalExpense)
		}
		if !s.NetAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected net 500, got %s", s.NetAmount)
		}
		if s.TransactionCount != 3 {
			t.Errorf("expected count 3, got %d", s.TransactionCount)
		}
		if len(s.CategoryBreakdown) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(s.CategoryBreakdown))
		}

		salary, food := s.CategoryBreakdown[0], s.CategoryBreakdown[1]
		if salary.Category != "Salary" || !salary.Amount.Equal(decimal.NewFromInt(1000)) || salary.Kind != models.KindIncome {
			t.Errorf("unexpected first row %+v", salary)
		}
		if food.Category != "Food" || !food.Amount.Equal(decimal.NewFromInt(500)) || food.Kind != models.KindExpense {
			t.Errorf("unexpected second row %+v", food)
		}
		if math.Abs(salary.Percentage-66.6667) > 0.001 {
			t.Errorf("expected ~66.67%%, got %f", salary.Percentage)
		}
		if math.Abs(food.Percentage-33.3333) > 0.001 {
			t.Errorf("expected ~33.33%%, got %f", food.Percentage)
		}
	})

	t.Run("shared_category_keeps_first_kind", func(t *testing.T) {
		s := ComputeSummary([]models.Transaction{
			tx(models.KindExpense, "50", "Other", now),
			tx(models.KindIncome, "200", "Other", now),
		})

		if len(s.CategoryBreakdown) != 1 {
			t.Fatalf("expected a single merged row, got %d", len(s.CategoryBreakdown))
		}
		row := s.CategoryBreakdown[0]
		if row.Kind != models.KindExpense {
			t.Errorf("expected first-seen kind expense, got %s", row.Kind)
		}
		if !row.Amount.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected merged amount 250, got %s", row.Amount)
		}
		if row.Percentage != 100 {
			t.Errorf("expected 100%%, got %f", row.Percentage)
		}
	})

	t.Run("category_names_are_case_sensitive", func(t *testing.T) {
		s := ComputeSummary([]models.Transaction{
			tx(models.KindExpense, "10", "food", now),
			tx(models.KindExpense, "10", "Food", now),
		})
		if len(s.CategoryBreakdown) != 2 {
			t.Errorf("expected 2 rows, got %d", len(s.CategoryBreakdown))
		}
	})

	t.Run("ties_keep_first_seen_order", func(t *testing.T) {
		s := ComputeSummary([]models.Transaction{
			tx(models.KindExpense, "10", "B", now),
			tx(models.KindExpense, "30", "C", now),
			tx(models.KindExpense, "10", "A", now),
		})
		var got []string
		for _, row := range s.CategoryBreakdown {
			got = append(got, row.Category)
		}
		if want := []string{"C", "B", "A"}; !reflect.DeepEqual(got, want) {
			t.Errorf("expected order %v, got %v", want, got)
		}
	})

	t.Run("zero_amounts_give_zero_percentages", func(t *testing.T) {
		s := ComputeSummary([]models.Transaction{
			tx(models.KindIncome, "0", "Gift", now),
			tx(models.KindExpense, "0", "Travel", now),
		})
		for _, row := range s.CategoryBreakdown {
			if row.Percentage != 0 {
				t.Errorf("expected 0%% for %s, got %f", row.Category, row.Percentage)
			}
		}
	})

	t.Run("unknown_kind_counts_in_breakdown_only", func(t *testing.T) {
		s := ComputeSummary([]models.Transaction{
			tx(models.KindIncome, "100", "Salary", now),
			tx(models.Kind("transfer"), "40", "Moves", now),
		})
		if !s.TotalIncome.Equal(decimal.NewFromInt(100)) || !s.TotalExpense.IsZero() {
			t.Errorf("unexpected totals %s/%s", s.TotalIncome, s.TotalExpense)
		}
		if len(s.CategoryBreakdown) != 2 {
			t.Errorf("expected 2 rows, got %d", len(s.CategoryBreakdown))
		}
	})
}

func TestComputeSummaryProperties(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	sets := [][]models.Transaction{
		{
			tx(models.KindIncome, "1250.50", "Salary", now),
			tx(models.KindExpense, "99.99", "Food & Dining", now),
			tx(models.KindExpense, "0.01", "Other", now),
			tx(models.KindIncome, "17.25", "Other", now),
			tx(models.KindExpense, "310", "Travel", now),
		},
		{
			tx(models.KindExpense, "0.1", "A", now),
			tx(models.KindExpense, "0.2", "B", now),
			tx(models.KindExpense, "0.3", "C", now),
		},
		{
			tx(models.KindIncome, "5", "X", now),
		},
	}

	for i, set := range sets {
		s := ComputeSummary(set)

		if !s.NetAmount.Equal(s.TotalIncome.Sub(s.TotalExpense)) {
			t.Errorf("set %d: net %s != income %s - expense %s", i, s.NetAmount, s.TotalIncome, s.TotalExpense)
		}

		sum := decimal.Zero
		for _, row := range s.CategoryBreakdown {
			sum = sum.Add(row.Amount)
		}
		total := s.TotalIncome.Add(s.TotalExpense)
		if !sum.Equal(total) {
			t.Errorf("set %d: breakdown sum %s != total %s", i, sum, total)
		}

		for j := 1; j < len(s.CategoryBreakdown); j++ {
			if s.CategoryBreakdown[j].Amount.GreaterThan(s.CategoryBreakdown[j-1].Amount) {
				t.Errorf("set %d: breakdown not sorted at %d", i, j)
			}
		}

		for _, row := range s.CategoryBreakdown {
			want := row.Amount.InexactFloat64() / total.InexactFloat64() * 100
			if math.Abs(row.Percentage-want) > 1e-9 {
				t.Errorf("set %d: %s percentage %f, want %f", i, row.Category, row.Percentage, want)
			}
		}

		if again := ComputeSummary(set); !reflect.DeepEqual(s, again) {
			t.Errorf("set %d: repeated call produced a different result", i)
		}
	}
}
