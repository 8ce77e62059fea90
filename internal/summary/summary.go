// Package summary turns a snapshot of transactions into totals, per-category
// shares and calendar-month buckets. Every function here is pure: it reads
// its arguments, allocates its result and touches nothing else.
package summary

import (
	"slices"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

var hundred = decimal.NewFromInt(100)

// CategoryShare is one row of the category breakdown.
type CategoryShare struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Kind       models.Kind     `json:"type"`
}

// FinancialSummary aggregates a set of transactions.
type FinancialSummary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	NetAmount         decimal.Decimal `json:"netAmount"`
	TransactionCount  int             `json:"transactionCount"`
	CategoryBreakdown []CategoryShare `json:"categoryBreakdown"`
}

// ComputeSummary totals income and expense and builds the category
// breakdown.
//
// Categories are keyed by their exact name only. A category that shows up
// under both kinds becomes a single row whose Kind is taken from the first
// transaction seen and whose Amount adds up both kinds. Percentages are
// relative to income plus expense and are not normalised to sum to 100.
// Rows are ordered by amount, largest first; equal amounts keep first-seen
// order.
func ComputeSummary(transactions []models.Transaction) FinancialSummary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	breakdown := make([]CategoryShare, 0)
	index := make(map[string]int)

	for _, t := range transactions {
		switch t.Kind {
		case models.KindIncome:
			totalIncome = totalIncome.Add(t.Amount)
		case models.KindExpense:
			totalExpense = totalExpense.Add(t.Amount)
		}

		if i, ok := index[t.Category]; ok {
			breakdown[i].Amount = breakdown[i].Amount.Add(t.Amount)
			continue
		}
		index[t.Category] = len(breakdown)
		breakdown = append(breakdown, CategoryShare{
			Category: t.Category,
			Amount:   t.Amount,
			Kind:     t.Kind,
		})
	}

	total := totalIncome.Add(totalExpense)
	for i := range breakdown {
		breakdown[i].Percentage = percentage(breakdown[i].Amount, total)
	}

	slices.SortStableFunc(breakdown, func(a, b CategoryShare) int {
		return b.Amount.Cmp(a.Amount)
	})

	return FinancialSummary{
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		NetAmount:         totalIncome.Sub(totalExpense),
		TransactionCount:  len(transactions),
		CategoryBreakdown: breakdown,
	}
}

func percentage(amount, total decimal.Decimal) float64 {
	if !total.IsPositive() {
		return 0
	}
	return amount.Div(total).Mul(hundred).InexactFloat64()
}
