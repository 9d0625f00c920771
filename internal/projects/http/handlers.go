package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/logger"
)

func (h *Handler) list(c *gin.Context) {
	userID := auth.UserID(c)
	items, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		logger.Op(c.Request.Context(), "projects.list").Error("list projects failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return
	}

	p, err := h.svc.Get(c.Request.Context(), auth.UserID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		logger.Op(c.Request.Context(), "projects.get").Error("get project failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}
