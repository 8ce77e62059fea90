package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// DataHandler handles demo data and bulk data requests
type DataHandler struct {
	sampleDataService services.SampleDataServicer
	dataService       services.DataServicer
}

// NewDataHandler creates a new DataHandler
func NewDataHandler(sampleDataService services.SampleDataServicer, dataService services.DataServicer) *DataHandler {
	return &DataHandler{sampleDataService: sampleDataService, dataService: dataService}
}

// SampleModeRequest switches demo mode on or off
type SampleModeRequest struct {
	Enabled *bool `json:"enabled" example:"true"`
}

// GetSampleData reports the demo mode state
// @Summary     Sample data status
// @Tags        data
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} services.SampleDataStatus "Status"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sample-data [get]
func (h *DataHandler) GetSampleData(c *gin.Context) {
	status, err := h.sampleDataService.GetSampleDataStatus(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sampleData": status})
}

// SetSampleData toggles demo mode
// @Summary     Toggle sample data
// @Description Enabling replaces all transactions with generated demo data; disabling removes all transactions
// @Tags        data
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body SampleModeRequest true "Desired state"
// @Success     200 {object} services.SampleDataStatus "Status"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sample-data [put]
func (h *DataHandler) SetSampleData(c *gin.Context) {
	var req SampleModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	if req.Enabled == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "enabled is required"))
		return
	}

	status, err := h.sampleDataService.SetSampleMode(c.Request.Context(), *req.Enabled)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sampleData": status})
}

// ClearAllData wipes transactions, categories and settings
// @Summary     Clear all data
// @Tags        data
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} MessageResponse "Data cleared"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /data [delete]
func (h *DataHandler) ClearAllData(c *gin.Context) {
	if err := h.dataService.ClearAllData(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "All data cleared successfully"})
}
