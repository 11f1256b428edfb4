package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/middleware"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/response"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/views"
)

type LayoutHandler struct{}

func NewLayoutHandler() *LayoutHandler { return &LayoutHandler{} }

// GET /api/
func (h *LayoutHandler) Banner(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"message":    views.AppName + " API - " + views.Tagline,
		"disclaimer": views.BannerDisclaimer,
	})
}

// GET /api/layout
func (h *LayoutHandler) Layout(c *gin.Context) {
	response.RespondOK(c, views.BuildLayout(middleware.AppState(c, views.ParseTab(c.Query("tab")))))
}

// GET /api/safety
func (h *LayoutHandler) Safety(c *gin.Context) {
	response.RespondOK(c, views.BuildSafety(middleware.AppState(c, views.TabSafety)))
}
