package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/usecase/points"
)

type PointsHandler struct {
	pointsUseCase *points.PointsUseCase
}

func NewPointsHandler(pointsUseCase *points.PointsUseCase) *PointsHandler {
	return &PointsHandler{
		pointsUseCase: pointsUseCase,
	}
}

// BalanceResponse carries the folded ledger total
type BalanceResponse struct {
	Balance int `json:"balance"`
}

// GetBalance handles GET /points/balance
// @Summary Get points balance
// @Tags points
// @Security BearerAuth
// @Produce json
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Router /points/balance [get]
func (h *PointsHandler) GetBalance(c *gin.Context) {
	balance, err := h.pointsUseCase.Balance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

// GetLedger handles GET /points/ledger
// @Summary Get points ledger
// @Tags points
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.PointsLedgerEntry
// @Failure 401 {object} ErrorResponse
// @Router /points/ledger [get]
func (h *PointsHandler) GetLedger(c *gin.Context) {
	entries, err := h.pointsUseCase.Ledger(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SpendRequest carries a points purchase
type SpendRequest struct {
	Amount int    `json:"amount" binding:"required,min=1"`
	Reason string `json:"reason" binding:"required"`
}

// Spend handles POST /points/spend
// @Summary Spend points
// @Description Deduct points if the balance covers the amount
// @Tags points
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SpendRequest true "Spend data"
// @Success 200 {object} domain.PointsLedgerEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /points/spend [post]
func (h *PointsHandler) Spend(c *gin.Context) {
	var req SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	entry, err := h.pointsUseCase.SpendPoints(c.Request.Context(), req.Amount, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}
