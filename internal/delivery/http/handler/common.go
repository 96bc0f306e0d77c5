package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		statusCode = http.StatusUnauthorized
		message = "not authenticated"
	case errors.Is(err, domain.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = "invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		statusCode = http.StatusUnauthorized
		message = "invalid or expired token"
	case errors.Is(err, domain.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = "user not found"
	case errors.Is(err, domain.ErrMatchNotFound):
		statusCode = http.StatusNotFound
		message = "match not found"
	case errors.Is(err, domain.ErrTripNotFound):
		statusCode = http.StatusNotFound
		message = "trip not found"
	case errors.Is(err, domain.ErrCannotSwipeSelf):
		statusCode = http.StatusBadRequest
		message = "cannot swipe on yourself"
	case errors.Is(err, domain.ErrNotMatchParticipant),
		errors.Is(err, domain.ErrNotTripParticipant):
		statusCode = http.StatusForbidden
		message = "not a participant"
	case errors.Is(err, domain.ErrInvalidTripTransition):
		statusCode = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrInsufficientPoints):
		statusCode = http.StatusConflict
		message = "insufficient points"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}
