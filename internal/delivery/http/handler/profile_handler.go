package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Description Get current user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	p, err := h.profileUseCase.Me(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateMyProfile handles PUT /profile/me
// @Summary Update my profile
// @Description Update current user's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateRequest true "Profile update data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	var req profile.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.profileUseCase.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetProfileByID handles GET /profile/:user_id
// @Summary Get user profile
// @Description Get another user's profile by user ID
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/{user_id} [get]
func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	p, err := h.profileUseCase.ByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetSettings handles GET /settings
// @Summary Get settings
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.UserSettings
// @Router /settings [get]
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileUseCase.Settings(c.Request.Context()))
}

// UpdateSettings handles PUT /settings
// @Summary Update settings
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.SettingsRequest true "Settings update"
// @Success 200 {object} domain.UserSettings
// @Failure 400 {object} ErrorResponse
// @Router /settings [put]
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	var req profile.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	settings, err := h.profileUseCase.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// CompleteOnboarding handles POST /profile/complete-onboarding
// @Summary Mark onboarding as complete
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /profile/complete-onboarding [post]
func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	if err := h.profileUseCase.CompleteOnboarding(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "onboarding completed",
	})
}
