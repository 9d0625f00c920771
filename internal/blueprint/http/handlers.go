// Package http exposes the read-only blueprint endpoints: the template
// catalogue and prompt classification diagnostics.
package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/catalogue"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/classifier"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/compose"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/dispatch"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/templates", h.templates)
	rg.POST("/classify", h.classify)
}

type templateView struct {
	Type      domain.ProjectType `json:"type"`
	TypeLabel string             `json:"type_label"`
	domain.ProjectTemplate
}

func (h *Handler) templates(c *gin.Context) {
	types := catalogue.Types()
	out := make([]templateView, 0, len(types))
	for _, t := range types {
		out = append(out, templateView{Type: t, TypeLabel: compose.TypeLabel(t), ProjectTemplate: catalogue.Lookup(t)})
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"templates": out,
		"examples":  catalogue.ExamplePrompts(),
	})
}

type classifyReq struct {
	Prompt string `json:"prompt"`
}

func (h *Handler) classify(c *gin.Context) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "prompt is required"})
		return
	}

	res := classifier.Score(req.Prompt)
	c.JSON(http.StatusOK, gin.H{
		"ok":               true,
		"type":             res.Type,
		"scores":           res.Scores,
		"intent":           classifier.AnalyzeIntent(req.Prompt),
		"creation_request": dispatch.IsProjectCreationRequest(req.Prompt),
	})
}
