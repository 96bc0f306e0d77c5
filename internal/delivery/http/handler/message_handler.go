package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/usecase/chat"
)

type MessageHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewMessageHandler(chatUseCase *chat.ChatUseCase) *MessageHandler {
	return &MessageHandler{
		chatUseCase: chatUseCase,
	}
}

// SendMessageRequest carries an outgoing chat message
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}

// SendMessage handles POST /matches/:match_id/messages
// @Summary Send a message
// @Description Append a message to a match thread
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match_id path string true "Match ID"
// @Param request body SendMessageRequest true "Message text"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{match_id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	msg, err := h.chatUseCase.SendMessage(c.Request.Context(), c.Param("match_id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /matches/:match_id/messages
// @Summary List messages
// @Description List a thread's messages ordered by creation time
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {array} domain.Message
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{match_id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	msgs, err := h.chatUseCase.MessagesForMatch(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}
