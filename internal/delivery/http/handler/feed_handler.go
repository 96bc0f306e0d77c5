package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/usecase/feed"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
	}
}

// GetStack handles GET /feed
// @Summary Get swipe stack
// @Description Ranked candidates the viewer has not swiped or matched yet
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Success 200 {array} matching.Result
// @Failure 401 {object} ErrorResponse
// @Router /feed [get]
func (h *FeedHandler) GetStack(c *gin.Context) {
	stack, err := h.feedUseCase.Stack(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stack)
}

// GetFilters handles GET /feed/filters
// @Summary Get active filters
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Filters
// @Router /feed/filters [get]
func (h *FeedHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.feedUseCase.Filters())
}

// UpdateFilters handles PUT /feed/filters
// @Summary Update filters
// @Description Merge a partial filter update into the active set
// @Tags feed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body feed.FiltersRequest true "Filter update"
// @Success 200 {object} domain.Filters
// @Failure 400 {object} ErrorResponse
// @Router /feed/filters [put]
func (h *FeedHandler) UpdateFilters(c *gin.Context) {
	var req feed.FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	c.JSON(http.StatusOK, h.feedUseCase.UpdateFilters(&req))
}
