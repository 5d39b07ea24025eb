package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/yungbote/legalkaz/backend/internal/requestdata"
	"github.com/yungbote/legalkaz/backend/internal/services"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

type HistoryHandler struct {
	historyService services.HistoryService
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

type userRequest struct {
	UserID string `json:"user_id"`
}

func (hh *HistoryHandler) bind(c *gin.Context) (string, bool) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return "", false
	}
	if id, err := uuid.Parse(req.UserID); err == nil {
		requestdata.GetRequestData(c.Request.Context()).SetAccountID(id)
	}
	return req.UserID, true
}

// History returns the flat, time-ordered message list of one account.
func (hh *HistoryHandler) History(c *gin.Context) {
	userID, ok := hh.bind(c)
	if !ok {
		return
	}
	msgs, err := hh.historyService.ListHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	entries := lo.Map(msgs, func(m *types.ChatMessage, _ int) types.HistoryEntry {
		return m.Entry()
	})
	c.JSON(http.StatusOK, entries)
}

// Sessions returns the same history already grouped into sessions.
func (hh *HistoryHandler) Sessions(c *gin.Context) {
	userID, ok := hh.bind(c)
	if !ok {
		return
	}
	sessions, err := hh.historyService.LoadSessions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}
