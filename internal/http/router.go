package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/handlers"
	httpMW "github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/middleware"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/observability"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	Metrics     *observability.Metrics

	HealthHandler    *httpH.HealthHandler
	LayoutHandler    *httpH.LayoutHandler
	DashboardHandler *httpH.DashboardHandler
	SymptomHandler   *httpH.SymptomHandler
	TriggersHandler  *httpH.TriggersHandler
	RiskHandler      *httpH.RiskHandler
	InhalerHandler   *httpH.InhalerHandler
	ChartHandler     *httpH.ChartHandler
	RealtimeHandler  *httpH.RealtimeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "aerosense"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.Disclaimer())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Layout
		if cfg.LayoutHandler != nil {
			api.GET("/", cfg.LayoutHandler.Banner)
			api.GET("/layout", cfg.LayoutHandler.Layout)
			api.GET("/safety", cfg.LayoutHandler.Safety)
		}

		// Dashboard
		if cfg.DashboardHandler != nil {
			api.GET("/dashboard", cfg.DashboardHandler.GetDashboard)
			api.GET("/activity", cfg.DashboardHandler.ListActivity)
		}

		// Symptoms
		if cfg.SymptomHandler != nil {
			api.POST("/symptoms/analyze", cfg.SymptomHandler.Analyze)
			api.GET("/symptoms", cfg.SymptomHandler.List)
		}

		// Triggers + environment
		if cfg.TriggersHandler != nil {
			api.GET("/triggers", cfg.TriggersHandler.GetTriggers)
			api.GET("/environment/current", cfg.TriggersHandler.Current)
			api.GET("/environment/history", cfg.TriggersHandler.History)
		}

		// Risk
		if cfg.RiskHandler != nil {
			api.GET("/risk", cfg.RiskHandler.Load)
			api.POST("/risk/calculate", cfg.RiskHandler.Calculate)
		}

		// Inhaler technique
		if cfg.InhalerHandler != nil {
			api.GET("/inhaler", cfg.InhalerHandler.List)
			api.POST("/inhaler/video", cfg.InhalerHandler.AnalyzeVideo)
			api.POST("/inhaler/checklist", cfg.InhalerHandler.AnalyzeChecklist)
			api.GET("/inhaler/demo", cfg.InhalerHandler.Demo)
		}

		// Charts
		if cfg.ChartHandler != nil {
			api.GET("/risk/trend.png", cfg.ChartHandler.RiskTrend)
			api.GET("/triggers/chart.png", cfg.ChartHandler.TriggersChart)
		}

		// Realtime (SSE)
		if cfg.RealtimeHandler != nil {
			api.GET("/events/stream", cfg.RealtimeHandler.Stream)
		}
	}

	return r
}
