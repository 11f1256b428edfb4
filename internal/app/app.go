package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/db"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos"
	apphttp "github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/observability"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/objectstore"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    repos.Repos
	Services Services
	Hub      *realtime.Hub
	Server   *apphttp.Server
	Metrics  *observability.Metrics

	events       *eventWiring
	store        objectstore.Store
	otelShutdown func(context.Context) error
}

// New loads configuration and wires every component. Nothing listens until Run.
func New(ctx context.Context) (*App, error) {
	log, err := logger.New(envLogMode())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	a := &App{Log: log, Cfg: cfg}
	a.otelShutdown = observability.InitOTel(ctx, log, cfg.otelConfig())
	a.Metrics = observability.Init(log)

	theDB, err := db.Open(log, cfg.DBConfig())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init db: %w", err)
	}
	a.DB = theDB
	if err := db.AutoMigrateAll(theDB); err != nil {
		a.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	a.Repos = repos.New(theDB, log)
	a.Hub = realtime.NewHub(log)

	a.events, err = wireEvents(ctx, log, cfg, a.Hub)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.store, err = wireObjectStore(ctx, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Services, err = wireServices(ctx, log, cfg, a.Repos, a.store, a.events.emitter)
	if err != nil {
		a.Close()
		return nil, err
	}

	handlers, err := wireHandlers(log, cfg, a.Services, a.Hub)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Server = apphttp.NewServer(apphttp.RouterConfig{
		Log:              log,
		ServiceName:      cfg.Otel.ServiceName,
		CORSOrigins:      cfg.CORSOrigins,
		Metrics:          a.Metrics,
		HealthHandler:    handlers.Health,
		LayoutHandler:    handlers.Layout,
		DashboardHandler: handlers.Dashboard,
		SymptomHandler:   handlers.Symptom,
		TriggersHandler:  handlers.Triggers,
		RiskHandler:      handlers.Risk,
		InhalerHandler:   handlers.Inhaler,
		ChartHandler:     handlers.Chart,
		RealtimeHandler:  handlers.Realtime,
	})
	return a, nil
}

// Run starts the background collectors and the cross-instance forwarder, then
// serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := a.events.start(ctx, a.Hub); err != nil {
		return err
	}
	if a.Metrics != nil {
		a.Metrics.StartDBCollector(ctx, a.Log, a.DB)
		a.Metrics.StartRedisCollector(ctx, a.Log, a.Cfg.RedisAddr, a.Cfg.RedisPassword)
		a.Metrics.StartServer(ctx, a.Log, a.Cfg.MetricsAddr)
	}
	return a.Server.Run(ctx, a.Cfg.Address())
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.events != nil {
		a.events.close(a.Log)
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Log.Warn("Closing object store failed", "error", err)
		}
	}
	if a.DB != nil {
		if err := db.Close(a.DB); err != nil {
			a.Log.Warn("Closing database failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
