package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/usecase/trip"
)

type TripHandler struct {
	tripUseCase *trip.TripUseCase
}

func NewTripHandler(tripUseCase *trip.TripUseCase) *TripHandler {
	return &TripHandler{
		tripUseCase: tripUseCase,
	}
}

// CreateTrip handles POST /trips
// @Summary Request a stay
// @Description File a stay request with a host
// @Tags trips
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body trip.CreateTripRequest true "Trip request data"
// @Success 201 {object} domain.Trip
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req trip.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.tripUseCase.CreateTripRequest(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListTrips handles GET /trips
// @Summary List trips
// @Description List the viewer's trips on either side of the engagement
// @Tags trips
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Trip
// @Failure 401 {object} ErrorResponse
// @Router /trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
	trips, err := h.tripUseCase.ForUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trips)
}

// GetTrip handles GET /trips/:trip_id
// @Summary Get one trip
// @Tags trips
// @Security BearerAuth
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} domain.Trip
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trips/{trip_id} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	t, err := h.tripUseCase.ByID(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// UpdateStatusRequest carries a lifecycle transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=requested accepted active completed review-pending closed declined"`
}

// UpdateStatus handles PUT /trips/:trip_id/status
// @Summary Update trip status
// @Description Move a trip along its lifecycle
// @Tags trips
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} domain.Trip
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /trips/{trip_id}/status [put]
func (h *TripHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	t, err := h.tripUseCase.UpdateStatus(c.Request.Context(), c.Param("trip_id"), domain.TripStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}
