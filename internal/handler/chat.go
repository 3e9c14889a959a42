package handler

import (
	"net/http"

	"github.com/sand1027/careerConnect/internal/middleware"
	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler handles the chat-assistant proxy
type ChatHandler struct {
	chat *service.ChatService
	log  *zap.Logger
}

func NewChatHandler(chat *service.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, log: log}
}

// Ask handles POST /ask
func (h *ChatHandler) Ask(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", ""))
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Message is required", ""))
		return
	}

	reply, err := h.chat.Ask(c.Request.Context(), userID.Hex(), req.Message)
	if err != nil {
		h.log.Warn("chat completion failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, model.NewErrorResponse("Assistant is unavailable right now", ""))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Reply generated", gin.H{"message": reply}))
}
