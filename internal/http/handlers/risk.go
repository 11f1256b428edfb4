package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/middleware"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/response"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/ctxutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/services"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/views"
)

type RiskHandler struct {
	log  *logger.Logger
	risk services.RiskService
}

func NewRiskHandler(log *logger.Logger, risk services.RiskService) *RiskHandler {
	return &RiskHandler{log: log.With("handler", "RiskHandler"), risk: risk}
}

func (h *RiskHandler) render(c *gin.Context, res services.RiskResult) {
	state := middleware.AppState(c, views.TabRisk)
	response.RespondOK(c, views.BuildRiskPage(state, res.Current, res.History, res.Stale))
}

// GET /api/risk
func (h *RiskHandler) Load(c *gin.Context) {
	res, err := h.risk.Load(c.Request.Context(), ctxutil.GetClientKey(c.Request.Context()))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	h.render(c, res)
}

// POST /api/risk/calculate
func (h *RiskHandler) Calculate(c *gin.Context) {
	res, err := h.risk.Calculate(c.Request.Context(), ctxutil.GetClientKey(c.Request.Context()))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	h.render(c, res)
}
