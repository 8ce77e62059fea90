package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// ProfileHandler handles onboarding requests
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// OnboardingRequest carries the name entered during onboarding
type OnboardingRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Meera"`
}

// GetProfile returns the onboarding profile
// @Summary     Get profile
// @Tags        profile
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} models.Profile "Profile"
// @Failure     404 {object} ErrorResponse "Onboarding not completed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// CompleteOnboarding records the user's name
// @Summary     Complete onboarding
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body OnboardingRequest true "User name"
// @Success     201 {object} models.Profile "Profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [post]
func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	profile, err := h.profileService.CompleteOnboarding(c.Request.Context(), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// ClearProfile forgets the user
// @Summary     Clear profile
// @Tags        profile
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} MessageResponse "Profile cleared"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [delete]
func (h *ProfileHandler) ClearProfile(c *gin.Context) {
	if err := h.profileService.ClearProfile(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Profile cleared successfully"})
}
