package summary

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// MonthYearLayout is the compact axis label used by the comparison series.
const MonthYearLayout = "Jan 2006"

// MonthlyBucket is the summary of one calendar month.
type MonthlyBucket struct {
	Month        string               `json:"month"`
	Year         int                  `json:"year"`
	TotalIncome  decimal.Decimal      `json:"totalIncome"`
	TotalExpense decimal.Decimal      `json:"totalExpense"`
	NetAmount    decimal.Decimal      `json:"netAmount"`
	Transactions []models.Transaction `json:"transactions"`
}

// MonthlyComparison is a bucket labelled for a chart axis.
type MonthlyComparison struct {
	MonthlyBucket
	MonthYear string `json:"monthYear"`
}

// MonthBounds returns the first and the last instant of the given month in
// loc. Months outside 1..12 roll over into neighbouring years the same way
// time.Date does.
func MonthBounds(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// ComputeMonthlyBucket keeps the transactions dated inside the month, both
// ends included, and totals them. Dates are compared as full timestamps, so
// a transaction at exactly the first or last instant of the month belongs
// to it.
func ComputeMonthlyBucket(transactions []models.Transaction, month time.Month, year int, loc *time.Location) MonthlyBucket {
	if loc == nil {
		loc = time.Local
	}
	start, end := MonthBounds(year, month, loc)

	inMonth := make([]models.Transaction, 0)
	for _, t := range transactions {
		if !t.Date.Before(start) && !t.Date.After(end) {
			inMonth = append(inMonth, t)
		}
	}

	s := ComputeSummary(inMonth)
	return MonthlyBucket{
		Month:        start.Month().String(),
		Year:         start.Year(),
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		NetAmount:    s.NetAmount,
		Transactions: inMonth,
	}
}

// ComputeMonthlyComparison returns windowSize consecutive month buckets
// ending with the month that contains reference, oldest first. Months are
// computed in reference's location. A zero window yields an empty series
// and a negative one is rejected with ErrInvalidWindow.
func ComputeMonthlyComparison(transactions []models.Transaction, windowSize int, reference time.Time) ([]MonthlyComparison, error) {
	if windowSize < 0 {
		return nil, apperrors.ErrInvalidWindow
	}

	loc := reference.Location()
	series := make([]MonthlyComparison, 0, windowSize)
	for i := windowSize - 1; i >= 0; i-- {
		first := time.Date(reference.Year(), reference.Month()-time.Month(i), 1, 0, 0, 0, 0, loc)
		series = append(series, MonthlyComparison{
			MonthlyBucket: ComputeMonthlyBucket(transactions, first.Month(), first.Year(), loc),
			MonthYear:     first.Format(MonthYearLayout),
		})
	}
	return series, nil
}
