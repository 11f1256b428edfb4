package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/chart"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/response"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/insights"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/ctxutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/services"
)

type ChartHandler struct {
	log       *logger.Logger
	renderer  *chart.Renderer
	risk      services.RiskService
	dashboard services.DashboardService
}

func NewChartHandler(log *logger.Logger, renderer *chart.Renderer, risk services.RiskService, dashboard services.DashboardService) *ChartHandler {
	return &ChartHandler{
		log:       log.With("handler", "ChartHandler"),
		renderer:  renderer,
		risk:      risk,
		dashboard: dashboard,
	}
}

func (h *ChartHandler) png(c *gin.Context, title string, series chart.Series, points []insights.TrendPoint) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, title, series, points); err != nil {
		h.log.Error("Rendering chart failed", "title", title, "error", err)
		response.RespondError(c, apierr.New(http.StatusInternalServerError, "chart_failed", err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// GET /api/risk/trend.png renders the history this client currently sees.
func (h *ChartHandler) RiskTrend(c *gin.Context) {
	res := h.risk.Displayed(ctxutil.GetClientKey(c.Request.Context()))
	h.png(c, "Risk Trend", chart.SeriesRisk, insights.EncodeRisk(res.History))
}

// GET /api/triggers/chart.png
func (h *ChartHandler) TriggersChart(c *gin.Context) {
	data, err := h.dashboard.Triggers(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	h.png(c, "Symptoms vs Environment", chart.SeriesSeverity, insights.EncodeSeverity(data.Symptoms))
}
