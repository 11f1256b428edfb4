package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/chart"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos"
	httpH "github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/handlers"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/observability"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/narrative"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/objectstore"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/services"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/technique"
)

type Services struct {
	Environment services.EnvironmentService
	Symptom     services.SymptomService
	Risk        services.RiskService
	Inhaler     services.InhalerService
	Dashboard   services.DashboardService
}

type Handlers struct {
	Health    *httpH.HealthHandler
	Layout    *httpH.LayoutHandler
	Dashboard *httpH.DashboardHandler
	Symptom   *httpH.SymptomHandler
	Triggers  *httpH.TriggersHandler
	Risk      *httpH.RiskHandler
	Inhaler   *httpH.InhalerHandler
	Chart     *httpH.ChartHandler
	Realtime  *httpH.RealtimeHandler
}

// LOG_MODE is read before the config file so config loading itself is logged.
func envLogMode() string {
	if v := strings.TrimSpace(os.Getenv("LOG_MODE")); v != "" {
		return v
	}
	return "development"
}

func (c Config) otelConfig() observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.Otel.Enabled,
		ServiceName: c.Otel.ServiceName,
		Environment: c.Otel.Environment,
		Version:     c.Version,
		Endpoint:    c.Otel.Endpoint,
		Headers:     observability.ParseHeaders(c.Otel.Headers),
		Insecure:    c.Otel.Insecure,
		SampleRatio: c.Otel.SampleRatio,
	}
}

func wireObjectStore(ctx context.Context, log *logger.Logger) (objectstore.Store, error) {
	log.Info("Wiring object storage...")
	cfg, err := objectstore.ResolveConfigFromEnv()
	if err != nil {
		log.Error("Object storage configuration invalid", "mode", cfg.Mode, "error", err)
		return nil, fmt.Errorf("object storage config: %w", err)
	}
	store, err := objectstore.New(ctx, log, cfg)
	if err != nil {
		log.Error("Object storage bootstrap failed", "mode", cfg.Mode, "emulator_host", cfg.EmulatorHost, "error", err)
		return nil, fmt.Errorf("object storage bootstrap: %w", err)
	}
	return store, nil
}

func wireServices(ctx context.Context, log *logger.Logger, cfg Config, r repos.Repos, uploader objectstore.Uploader, emit services.Emitter) (Services, error) {
	log.Info("Wiring services...")

	invoker, err := narrative.New(ctx, log, cfg.NarrativeProvider)
	if err != nil {
		return Services{}, fmt.Errorf("init narrative provider: %w", err)
	}
	mock, err := technique.NewMockEvaluator(nil)
	if err != nil {
		return Services{}, fmt.Errorf("load technique presets: %w", err)
	}
	notify := services.NewActivityNotifier(emit, cfg.EventTimeout)

	env := services.NewEnvironmentService(log, invoker, cfg.Location, nil, nil)
	return Services{
		Environment: env,
		Symptom:     services.NewSymptomService(log, r.Symptoms, invoker, env, notify),
		Risk:        services.NewRiskService(log, r.Symptoms, r.Risks, invoker, env, notify),
		Inhaler: services.NewInhalerService(log, r.Inhaler, uploader, mock, technique.NewRuleEvaluator(), notify,
			services.InhalerServiceConfig{ProcessingDelay: cfg.MockAnalysisDelay}),
		Dashboard: services.NewDashboardService(log, r, env),
	}, nil
}

func wireHandlers(log *logger.Logger, cfg Config, s Services, hub *realtime.Hub) (Handlers, error) {
	log.Info("Wiring handlers...")
	renderer, err := chart.New(chart.Options{FontPath: cfg.ChartFont})
	if err != nil {
		return Handlers{}, fmt.Errorf("init chart renderer: %w", err)
	}
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Layout:    httpH.NewLayoutHandler(),
		Dashboard: httpH.NewDashboardHandler(log, s.Dashboard),
		Symptom:   httpH.NewSymptomHandler(log, s.Symptom),
		Triggers:  httpH.NewTriggersHandler(log, s.Dashboard, s.Environment),
		Risk:      httpH.NewRiskHandler(log, s.Risk),
		Inhaler:   httpH.NewInhalerHandler(log, s.Inhaler, cfg.MaxUploadBytes),
		Chart:     httpH.NewChartHandler(log, renderer, s.Risk, s.Dashboard),
		Realtime:  httpH.NewRealtimeHandler(log, hub),
	}, nil
}
