package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
	"fintrack/internal/summary"
)

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/summary", handler.GetSummary)
	r.GET("/summary/monthly", handler.GetMonthlyBucket)
	r.GET("/summary/comparison", handler.GetMonthlyComparison)
	return r
}

func TestSummaryHandler_GetSummary(t *testing.T) {
	t.Run("empty summary has an empty breakdown", func(t *testing.T) {
		r := setupSummaryRouter(NewSummaryHandler(&mockSummaryService{}, time.UTC))
		rec := doRequest(r, "GET", "/summary", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		s := parseJSON(t, rec)["summary"].(map[string]interface{})
		if s["transactionCount"].(float64) != 0 {
			t.Errorf("expected 0 transactions, got %v", s["transactionCount"])
		}
		breakdown, ok := s["categoryBreakdown"].([]interface{})
		if !ok || len(breakdown) != 0 {
			t.Errorf("expected empty breakdown array, got %v", s["categoryBreakdown"])
		}
	})

	t.Run("forwards filters", func(t *testing.T) {
		var got services.TransactionFilter
		svc := &mockSummaryService{getSummaryFn: func(f services.TransactionFilter) (*summary.FinancialSummary, error) {
			got = f
			s := summary.ComputeSummary(nil)
			return &s, nil
		}}
		r := setupSummaryRouter(NewSummaryHandler(svc, time.UTC))

		rec := doRequest(r, "GET", "/summary?type=income&from_date=2024-01-01", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Kind == nil || got.FromDate == nil {
			t.Errorf("expected filters to be set, got %+v", got)
		}
	})
}

func TestSummaryHandler_GetMonthlyBucket(t *testing.T) {
	t.Run("uses query parameters", func(t *testing.T) {
		var gotYear int
		var gotMonth time.Month
		svc := &mockSummaryService{getMonthlyFn: func(year int, month time.Month) (*summary.MonthlyBucket, error) {
			gotYear, gotMonth = year, month
			return &summary.MonthlyBucket{Month: month.String(), Year: year}, nil
		}}
		r := setupSummaryRouter(NewSummaryHandler(svc, time.UTC))

		rec := doRequest(r, "GET", "/summary/monthly?year=2024&month=2", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotYear != 2024 || gotMonth != time.February {
			t.Errorf("expected Feb 2024, got %v %d", gotMonth, gotYear)
		}
		month := parseJSON(t, rec)["month"].(map[string]interface{})
		if month["month"] != "February" {
			t.Errorf("expected February, got %v", month["month"])
		}
	})

	t.Run("defaults to current month", func(t *testing.T) {
		var gotMonth time.Month
		svc := &mockSummaryService{getMonthlyFn: func(_ int, month time.Month) (*summary.MonthlyBucket, error) {
			gotMonth = month
			return &summary.MonthlyBucket{}, nil
		}}
		r := setupSummaryRouter(NewSummaryHandler(svc, time.UTC))

		doRequest(r, "GET", "/summary/monthly", "")
		if gotMonth != time.Now().UTC().Month() {
			t.Errorf("expected current month, got %v", gotMonth)
		}
	})

	t.Run("returns 400 on non-numeric month", func(t *testing.T) {
		r := setupSummaryRouter(NewSummaryHandler(&mockSummaryService{}, time.UTC))
		rec := doRequest(r, "GET", "/summary/monthly?month=feb", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSummaryHandler_GetMonthlyComparison(t *testing.T) {
	t.Run("uses the configured default window", func(t *testing.T) {
		var gotMonths int
		var gotRef time.Time
		svc := &mockSummaryService{
			defaultMonths: 4,
			getComparisonFn: func(months int, ref time.Time) ([]summary.MonthlyComparison, error) {
				gotMonths, gotRef = months, ref
				return nil, nil
			},
		}
		r := setupSummaryRouter(NewSummaryHandler(svc, time.UTC))

		rec := doRequest(r, "GET", "/summary/comparison", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotMonths != 4 || !gotRef.IsZero() {
			t.Errorf("expected 4 months and zero reference, got %d %v", gotMonths, gotRef)
		}
		months, ok := parseJSON(t, rec)["months"].([]interface{})
		if !ok || len(months) != 0 {
			t.Errorf("expected empty months array, got %v", months)
		}
	})

	t.Run("parses months and reference", func(t *testing.T) {
		var gotMonths int
		var gotRef time.Time
		svc := &mockSummaryService{getComparisonFn: func(months int, ref time.Time) ([]summary.MonthlyComparison, error) {
			gotMonths, gotRef = months, ref
			return []summary.MonthlyComparison{{MonthYear: "Jun 2024"}}, nil
		}}
		r := setupSummaryRouter(NewSummaryHandler(svc, time.UTC))

		rec := doRequest(r, "GET", "/summary/comparison?months=12&reference=2024-06-15", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotMonths != 12 || !gotRef.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected arguments %d %v", gotMonths, gotRef)
		}
	})

	t.Run("rejects oversized window", func(t *testing.T) {
		r := setupSummaryRouter(NewSummaryHandler(&mockSummaryService{}, time.UTC))
		rec := doRequest(r, "GET", "/summary/comparison?months=500", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_WINDOW")
	})

	t.Run("maps negative window error", func(t *testing.T) {
		svc := &mockSummaryService{getComparisonFn: func(int, time.Time) ([]summary.MonthlyComparison, error) {
			return nil, apperrors.ErrInvalidWindow
		}}
		r := setupSummaryRouter(NewSummaryHandler(svc, time.UTC))
		rec := doRequest(r, "GET", "/summary/comparison?months=-1", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
