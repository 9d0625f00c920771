package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/chat", h.postMessage)
	rg.GET("/chats/history", h.history)
	rg.GET("/session", h.session)
}
