package services

import (
	"context"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/storage"
	"fintrack/internal/summary"
)

const defaultComparisonMonths = 6

// summaryService serves the aggregation read models over a fresh snapshot
// of the stored transactions.
type summaryService struct {
	gw     storage.Gateway
	loc    *time.Location
	months int
}

// NewSummaryService creates a new SummaryServicer. loc is the zone months
// are computed in; months is the default comparison window.
func NewSummaryService(gw storage.Gateway, loc *time.Location, months int) SummaryServicer {
	if loc == nil {
		loc = time.Local
	}
	if months < 1 {
		months = defaultComparisonMonths
	}
	return &summaryService{gw: gw, loc: loc, months: months}
}

// GetSummary aggregates the transactions that match filter.
func (s *summaryService) GetSummary(ctx context.Context, filter TransactionFilter) (*summary.FinancialSummary, error) {
	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	result := summary.ComputeSummary(filterTransactions(txs, filter))
	return &result, nil
}

// GetMonthlyBucket aggregates one calendar month.
func (s *summaryService) GetMonthlyBucket(ctx context.Context, year int, month time.Month) (*summary.MonthlyBucket, error) {
	if month < time.January || month > time.December {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	bucket := summary.ComputeMonthlyBucket(txs, month, year, s.loc)
	return &bucket, nil
}

// GetMonthlyComparison returns months buckets ending with the month of
// reference. A zero reference means now.
func (s *summaryService) GetMonthlyComparison(ctx context.Context, months int, reference time.Time) ([]summary.MonthlyComparison, error) {
	if reference.IsZero() {
		reference = time.Now()
	}

	txs, err := s.gw.LoadTransactions(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	return summary.ComputeMonthlyComparison(txs, months, reference.In(s.loc))
}

// DefaultComparisonMonths returns the configured comparison window.
func (s *summaryService) DefaultComparisonMonths() int {
	return s.months
}
