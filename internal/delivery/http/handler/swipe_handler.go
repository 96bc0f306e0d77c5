package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/usecase/swipe"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// CreateSwipeRequest represents a swipe gesture
type CreateSwipeRequest struct {
	TargetID  string `json:"target_id" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=like dislike superlike"`
}

// CreateSwipe handles POST /swipe
// @Summary Record a swipe
// @Description Record a swipe gesture and resolve it into a match
// @Tags swipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateSwipeRequest true "Swipe data"
// @Success 200 {object} swipe.SwipeResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /swipe [post]
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	var req CreateSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), req.TargetID, domain.SwipeDirection(req.Direction))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMatches handles GET /matches
// @Summary List matches
// @Description List the viewer's match threads, most recently active first
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Match
// @Failure 401 {object} ErrorResponse
// @Router /matches [get]
func (h *SwipeHandler) GetMatches(c *gin.Context) {
	matches, err := h.swipeUseCase.Matches(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatch handles GET /matches/:match_id
// @Summary Get one match
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} domain.Match
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{match_id} [get]
func (h *SwipeHandler) GetMatch(c *gin.Context) {
	match, err := h.swipeUseCase.MatchByID(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}
