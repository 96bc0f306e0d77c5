package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthHandler(authUseCase *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// LoginRequest represents email/password authentication request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the response structure
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      interface{} `json:"user"`
}

// Login handles email/password authentication
// @Summary Login
// @Description Authenticate against the seeded accounts
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Unix(),
		User:      result.User,
	})
}

// DemoLogin signs in as the demo traveler with seeded content
// @Summary Demo login
// @Description Sign in as the demo account without credentials
// @Tags auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/demo [post]
func (h *AuthHandler) DemoLogin(c *gin.Context) {
	result, err := h.authUseCase.LoginAsDemo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Unix(),
		User:      result.User,
	})
}

// Onboarding creates a fresh account from the wizard answers
// @Summary Complete onboarding
// @Description Create a new user from onboarding answers and sign them in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.OnboardingRequest true "Onboarding answers"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/onboarding [post]
func (h *AuthHandler) Onboarding(c *gin.Context) {
	var req auth.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.authUseCase.CreateUserFromOnboarding(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Unix(),
		User:      result.User,
	})
}

// Logout clears the session and every session-scoped collection
// @Summary Logout
// @Description Clear the session, pending simulated events and session data
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUseCase.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "logged out successfully",
	})
}

// Me returns current user info
// @Summary Get current user
// @Description Get authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.authUseCase.CurrentUser(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
