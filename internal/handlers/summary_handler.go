package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
	"fintrack/internal/summary"
)

// maxComparisonMonths bounds the comparison window accepted over HTTP.
const maxComparisonMonths = 120

// SummaryHandler serves the aggregated views of the transaction list.
type SummaryHandler struct {
	summaryService services.SummaryServicer
	loc            *time.Location
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer, loc *time.Location) *SummaryHandler {
	if loc == nil {
		loc = time.Local
	}
	return &SummaryHandler{summaryService: summaryService, loc: loc}
}

// GetSummary handles the overall financial summary
// @Summary     Financial summary
// @Description Totals, net amount and per-category breakdown of the matching transactions
// @Tags        summary
// @Produce     json
// @Security    ApiKeyAuth
// @Param       type      query string false "Filter by type (income, expense)"
// @Param       category  query string false "Filter by category name"
// @Param       from_date query string false "Filter by start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} summary.FinancialSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	filter, err := parseTransactionFilter(c, h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.summaryService.GetSummary(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": result})
}

// GetMonthlyBucket handles a single month's totals
// @Summary     Monthly bucket
// @Description Totals and transactions of one calendar month. Defaults to the current month.
// @Tags        summary
// @Produce     json
// @Security    ApiKeyAuth
// @Param       year  query int false "Year, e.g. 2024"
// @Param       month query int false "Month 1-12"
// @Success     200 {object} summary.MonthlyBucket "Month"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/monthly [get]
func (h *SummaryHandler) GetMonthlyBucket(c *gin.Context) {
	now := time.Now().In(h.loc)
	year, month := now.Year(), int(now.Month())

	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year"))
			return
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month"))
			return
		}
		month = parsed
	}

	bucket, err := h.summaryService.GetMonthlyBucket(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": bucket})
}

// GetMonthlyComparison handles the month-over-month series
// @Summary     Monthly comparison
// @Description Consecutive month buckets ending with the reference month, oldest first
// @Tags        summary
// @Produce     json
// @Security    ApiKeyAuth
// @Param       months    query int    false "Window size (default from server config, max 120)"
// @Param       reference query string false "Reference date (RFC3339 or YYYY-MM-DD), defaults to now"
// @Success     200 {array}  summary.MonthlyComparison "Series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/comparison [get]
func (h *SummaryHandler) GetMonthlyComparison(c *gin.Context) {
	months := h.summaryService.DefaultComparisonMonths()
	if v := c.Query("months"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid months"))
			return
		}
		months = parsed
	}
	if months > maxComparisonMonths {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidWindow, "months must not exceed 120"))
		return
	}

	var reference time.Time
	if v := c.Query("reference"); v != "" {
		parsed, _, err := parseFlexibleTime(v, h.loc)
		if err != nil {
			respondWithError(c, invalidInput(err))
			return
		}
		reference = parsed
	}

	series, err := h.summaryService.GetMonthlyComparison(c.Request.Context(), months, reference)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if series == nil {
		series = []summary.MonthlyComparison{}
	}

	c.JSON(http.StatusOK, gin.H{"months": series})
}
