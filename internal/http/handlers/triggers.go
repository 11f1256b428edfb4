package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/middleware"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/response"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/services"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/views"
)

type TriggersHandler struct {
	log       *logger.Logger
	dashboard services.DashboardService
	env       services.EnvironmentService
}

func NewTriggersHandler(log *logger.Logger, dashboard services.DashboardService, env services.EnvironmentService) *TriggersHandler {
	return &TriggersHandler{log: log.With("handler", "TriggersHandler"), dashboard: dashboard, env: env}
}

// GET /api/triggers
func (h *TriggersHandler) GetTriggers(c *gin.Context) {
	data, err := h.dashboard.Triggers(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	state := middleware.AppState(c, views.TabTriggers)
	response.RespondOK(c, views.BuildTriggersPage(state, h.env.Location(), data.Symptoms, data.Environment))
}

// GET /api/environment/current
func (h *TriggersHandler) Current(c *gin.Context) {
	env, err := h.env.Current(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"location": h.env.Location(), "environment": env})
}

// GET /api/environment/history?days=N
func (h *TriggersHandler) History(c *gin.Context) {
	days, ok := queryInt(c, "days", 0)
	if !ok {
		response.RespondValidation(c, "invalid_days", "days must be a positive number")
		return
	}
	days = services.ClampHistoryDays(days)
	history, err := h.env.History(c.Request.Context(), days)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"location": h.env.Location(), "days": days, "history": history})
}
