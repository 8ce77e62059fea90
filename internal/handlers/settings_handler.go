package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// SettingsHandler handles user preference requests
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest carries the settings fields to change
type UpdateSettingsRequest struct {
	WelcomeMessage *string       `json:"welcomeMessage" binding:"omitempty,max=200"`
	Currency       *string       `json:"currency" binding:"omitempty,iso4217" example:"USD"`
	DateFormat     *string       `json:"dateFormat" binding:"omitempty,max=32" example:"dd MMM yyyy"`
	Theme          *models.Theme `json:"theme" binding:"omitempty,theme" example:"dark"`
}

// GetSettings handles reading the settings
// @Summary     Get settings
// @Tags        settings
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} models.Settings "Settings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings handles a partial settings update
// @Summary     Update settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body UpdateSettingsRequest true "Fields to update"
// @Success     200 {object} models.Settings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), services.SettingsUpdate{
		WelcomeMessage: req.WelcomeMessage,
		Currency:       req.Currency,
		DateFormat:     req.DateFormat,
		Theme:          req.Theme,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// ResetSettings handles restoring the default settings
// @Summary     Reset settings
// @Tags        settings
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} models.Settings "Default settings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings/reset [post]
func (h *SettingsHandler) ResetSettings(c *gin.Context) {
	settings, err := h.settingsService.ResetSettings(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
