package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/usecase/review"
)

type ReviewHandler struct {
	reviewUseCase *review.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *review.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// CreateReview handles POST /reviews
// @Summary File a trip review
// @Description Review the trip counterpart and collect the review reward
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body review.CreateReviewRequest true "Review data"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.reviewUseCase.CreateReview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListForTrip handles GET /trips/:trip_id/reviews
// @Summary List trip reviews
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {array} domain.Review
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trips/{trip_id}/reviews [get]
func (h *ReviewHandler) ListForTrip(c *gin.Context) {
	reviews, err := h.reviewUseCase.ForTrip(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
