package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/legalkaz/backend/internal/requestdata"
	"github.com/yungbote/legalkaz/backend/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (ch *ChatHandler) AppendMessage(c *gin.Context) {
	var req struct {
		UserID    string `json:"user_id"`
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
		Role      string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	if id, err := uuid.Parse(req.UserID); err == nil {
		requestdata.GetRequestData(c.Request.Context()).SetAccountID(id)
	}
	msg, err := ch.chatService.AppendMessage(c.Request.Context(), req.UserID, req.SessionID, req.Message, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg.Record())
}
