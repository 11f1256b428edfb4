package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/middleware"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/response"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/insights"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/services"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/views"
)

type DashboardHandler struct {
	log       *logger.Logger
	dashboard services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboard services.DashboardService) *DashboardHandler {
	return &DashboardHandler{log: log.With("handler", "DashboardHandler"), dashboard: dashboard}
}

// GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	data, err := h.dashboard.Dashboard(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	state := middleware.AppState(c, views.TabHome)
	response.RespondOK(c, views.BuildDashboard(state, data.Risk, data.Environment, data.Symptoms, data.Assessments))
}

// GET /api/activity?limit=N
func (h *DashboardHandler) ListActivity(c *gin.Context) {
	limit, ok := queryLimit(c, insights.RecentActivityLimit)
	if !ok {
		response.RespondValidation(c, "invalid_limit", "limit must be a positive number")
		return
	}
	items, err := h.dashboard.Activity(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}
