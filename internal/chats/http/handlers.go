package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/logger"
)

func (h *Handler) postMessage(c *gin.Context) {
	var req postMsgReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "message is required"})
		return
	}

	turn, err := h.svc.PostMessage(c.Request.Context(), auth.UserID(c), req.Message)
	if turn == nil {
		logger.Op(c.Request.Context(), "chats.post_message").Error("chat turn failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not process message"})
		return
	}

	// The reply is still shown when history could not be written.
	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"answer":       turn.Reply.Text,
		"kind":         turn.Reply.Kind,
		"project_type": turn.Reply.Type,
		"project":      turn.Reply.Project,
		"saved":        err == nil,
	})
}

func (h *Handler) history(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid limit"})
			return
		}
		limit = n
	}

	turns, err := h.svc.History(c.Request.Context(), auth.UserID(c), limit)
	if err != nil {
		logger.Op(c.Request.Context(), "chats.history").Error("load history failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "messages": turns})
}

func (h *Handler) session(c *gin.Context) {
	s, err := h.svc.Session(c.Request.Context(), auth.UserID(c))
	if err != nil {
		logger.Op(c.Request.Context(), "chats.session").Error("load session failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"user":     gin.H{"user_id": auth.UserID(c), "username": auth.Username(c)},
		"projects": s.Projects,
		"history":  s.History,
	})
}
