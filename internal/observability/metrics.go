package observability

import (
	"context"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type Metrics struct {
	apiRequests      *CounterVec
	apiLatency       *HistogramVec
	apiInflight      *Gauge
	apiErrors        *CounterVec
	narrativeCalls   *CounterVec
	narrativeLatency *HistogramVec
	uploads          *CounterVec
	events           *CounterVec
	riskFenced       *CounterVec
	dbStats          *CounterVec
	dbOpen           *Gauge
	redisUp          *Gauge
	redisPing        *Gauge
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	v := strings.TrimSpace(os.Getenv("METRICS_ENABLED"))
	if v == "" {
		return false
	}
	return strings.EqualFold(v, "true") || v == "1" || strings.EqualFold(v, "yes")
}

// Current is nil until Init runs with metrics enabled. Every method is nil-safe.
func Current() *Metrics {
	return instance
}

func scrapeInterval() time.Duration {
	v := strings.TrimSpace(os.Getenv("METRICS_SCRAPE_INTERVAL_SECONDS"))
	if v == "" {
		return 10 * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 10 * time.Second
	}
	return time.Duration(n) * time.Second
}

func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = newMetrics()
		if log != nil {
			log.Info("metrics enabled")
		}
	})
	return instance
}

func newMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("aerosense_api_requests_total", "HTTP requests by method, route and status.", []string{"method", "route", "status"}),
		apiLatency:  NewHistogramVec("aerosense_api_request_duration_seconds", "HTTP request latency.", []string{"method", "route"}, nil),
		apiInflight: NewGauge("aerosense_api_inflight_requests", "HTTP requests currently being served."),
		apiErrors:   NewCounterVec("aerosense_api_errors_total", "Error responses by route and error code.", []string{"route", "code"}),
		narrativeCalls: NewCounterVec("aerosense_narrative_requests_total", "Narrative collaborator calls by provider, shape and outcome.",
			[]string{"provider", "shape", "status"}),
		narrativeLatency: NewHistogramVec("aerosense_narrative_duration_seconds", "Narrative collaborator latency.",
			[]string{"provider", "shape"}, []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60}),
		uploads:    NewCounterVec("aerosense_uploads_total", "Video uploads by backend and outcome.", []string{"backend", "status"}),
		events:     NewCounterVec("aerosense_events_total", "Domain events by event, sink and outcome.", []string{"event", "sink", "status"}),
		riskFenced: NewCounterVec("aerosense_risk_results_total", "Finished risk calculations by whether they were applied or fenced out.", []string{"outcome"}),
		dbStats:    NewCounterVec("aerosense_db_wait_total", "Connection pool waits observed by the collector.", []string{"kind"}),
		dbOpen:     NewGauge("aerosense_db_open_connections", "Open database connections."),
		redisUp:    NewGauge("aerosense_redis_up", "1 when the event bus Redis answered the last ping."),
		redisPing:  NewGauge("aerosense_redis_ping_seconds", "Latency of the last Redis ping."),
	}
}

func (m *Metrics) StartServer(ctx context.Context, log *logger.Logger, addr string) {
	if m == nil {
		return
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           http.HandlerFunc(m.WriteHTTP),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if log != nil {
				log.Error("metrics server failed", "error", err, "addr", addr)
			}
		}
	}()
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

type promWriter interface {
	WritePrometheus(w io.Writer) error
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	for _, p := range []promWriter{
		m.apiRequests, m.apiLatency, m.apiInflight, m.apiErrors,
		m.narrativeCalls, m.narrativeLatency,
		m.uploads, m.events, m.riskFenced,
		m.dbStats, m.dbOpen, m.redisUp, m.redisPing,
	} {
		if err := p.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	method, route = orUnknown(method), orUnknown(route)
	m.apiRequests.Inc(method, route, orUnknown(status))
	m.apiLatency.Observe(dur.Seconds(), method, route)
}

// IncAPIError counts an error response under its machine code (e.g. risk_calculation_failed).
func (m *Metrics) IncAPIError(route, code string) {
	if m == nil {
		return
	}
	m.apiErrors.Inc(orUnknown(route), orUnknown(code))
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) ObserveNarrative(provider, shape string, dur time.Duration, err error) {
	if m == nil {
		return
	}
	provider, shape = orUnknown(provider), orUnknown(shape)
	m.narrativeCalls.Inc(provider, shape, outcome(err))
	m.narrativeLatency.Observe(dur.Seconds(), provider, shape)
}

func (m *Metrics) IncUpload(backend string, err error) {
	if m == nil {
		return
	}
	m.uploads.Inc(orUnknown(backend), outcome(err))
}

func (m *Metrics) IncEvent(event, sink string, err error) {
	if m == nil {
		return
	}
	m.events.Inc(orUnknown(event), orUnknown(sink), outcome(err))
}

// IncRiskResult counts finished risk calculations; stale ones lost the fence.
func (m *Metrics) IncRiskResult(stale bool) {
	if m == nil {
		return
	}
	if stale {
		m.riskFenced.Inc("stale")
		return
	}
	m.riskFenced.Inc("applied")
}

func (m *Metrics) StartDBCollector(ctx context.Context, log *logger.Logger, db *gorm.DB) {
	if m == nil || db == nil {
		return
	}
	interval := scrapeInterval()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var lastWait int64
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					if log != nil {
						log.Warn("metrics: db stats unavailable", "error", err)
					}
					continue
				}
				stats := sqlDB.Stats()
				m.dbOpen.Set(float64(stats.OpenConnections))
				if d := stats.WaitCount - lastWait; d > 0 {
					m.dbStats.Add(float64(d), "wait")
				}
				lastWait = stats.WaitCount
			}
		}
	}()
}

func (m *Metrics) StartRedisCollector(ctx context.Context, log *logger.Logger, addr, password string) {
	if m == nil {
		return
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}
	interval := scrapeInterval()
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				_ = rdb.Close()
				return
			case <-ticker.C:
				start := time.Now()
				if err := rdb.Ping(ctx).Err(); err != nil {
					m.redisUp.Set(0)
					if log != nil {
						log.Warn("metrics: redis ping failed", "error", err)
					}
					continue
				}
				m.redisUp.Set(1)
				m.redisPing.Set(time.Since(start).Seconds())
			}
		}
	}()
}
