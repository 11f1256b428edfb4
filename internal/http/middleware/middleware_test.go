package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/response"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/observability"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/ctxutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/views"
)

type seen struct {
	clientKey string
	state     views.AppState
	traceID   string
	trace     ctxutil.TraceData
}

func newEngine(out *seen) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext(), AttachRequestContext(), Disclaimer(), RequestLogger(logger.Nop()))
	r.GET("/api/risk", func(c *gin.Context) {
		out.clientKey = ctxutil.GetClientKey(c.Request.Context())
		out.state = AppState(c, views.TabRisk)
		if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
			out.traceID = td.TraceID
			out.trace = *td
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestContextFromHeaders(t *testing.T) {
	var got seen
	r := newEngine(&got)

	req := httptest.NewRequest(http.MethodGet, "/api/risk", nil)
	req.Header.Set(headerClientID, "tab-42")
	req.Header.Set(headerTheme, "dark")
	req.Header.Set(headerTraceID, "trace-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tab-42", got.clientKey)
	assert.Equal(t, views.AppState{Theme: views.ThemeDark, ActiveTab: views.TabRisk}, got.state)
	assert.Equal(t, "trace-1", got.traceID)
	assert.Equal(t, "tab-42", got.trace.ClientKey)
	assert.Equal(t, views.HeaderDisclaimer, rec.Header().Get(HeaderDisclaimer))
	assert.Equal(t, "trace-1", rec.Header().Get(headerTraceID))
	assert.NotEmpty(t, rec.Header().Get(headerRequestID))
}

func TestRequestContextDefaults(t *testing.T) {
	var got seen
	r := newEngine(&got)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/risk?theme=system", nil))

	assert.Equal(t, ctxutil.DefaultClientKey, got.clientKey)
	assert.Equal(t, views.ThemeSystem, got.state.Theme)
	assert.NotEmpty(t, got.traceID)
	assert.Equal(t, ctxutil.DefaultClientKey, got.trace.ClientKey)
	assert.NotContains(t, got.trace.LogFields(), "client_id")
}

func TestClientKeyIsBounded(t *testing.T) {
	var got seen
	r := newEngine(&got)

	req := httptest.NewRequest(http.MethodGet, "/api/risk", nil)
	req.Header.Set(headerClientID, strings.Repeat("k", 500))
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Len(t, got.clientKey, maxClientKeyLen)
}

func TestAppStateWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, views.AppState{Theme: views.ThemeLight, ActiveTab: views.TabSafety}, AppState(c, views.TabSafety))
}

func TestSpanCarriesRequestAndClientIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	r := gin.New()
	r.Use(otelgin.Middleware("aerosense", otelgin.WithTracerProvider(tp)), AttachTraceContext(), AttachRequestContext())
	r.GET("/api/risk", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/risk", nil)
	req.Header.Set(headerClientID, "tab-7")
	req.Header.Set(headerRequestID, "req-9")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := map[attribute.Key]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value.Emit()
	}
	assert.Equal(t, "req-9", attrs[attrRequestID])
	assert.Equal(t, "tab-7", attrs[attrClientID])
	// No X-Trace-Id header, so the otel trace id is echoed.
	assert.Equal(t, spans[0].SpanContext().TraceID().String(), rec.Header().Get(headerTraceID))
}

func TestMetricsCountErrorCodes(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "true")
	m := observability.Init(logger.Nop())
	require.NotNil(t, m)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(m))
	r.POST("/api/middleware-test/risk", func(c *gin.Context) {
		response.RespondError(c, apierr.Upstream("risk_calculation_failed", "Unable to calculate risk. Please try again.", assert.AnError))
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/middleware-test/risk", nil))

	var buf bytes.Buffer
	require.NoError(t, m.WritePrometheus(&buf))
	assert.Contains(t, buf.String(), `aerosense_api_errors_total{route="/api/middleware-test/risk",code="risk_calculation_failed"} 1.000000`)
	assert.Contains(t, buf.String(), `aerosense_api_requests_total{method="POST",route="/api/middleware-test/risk",status="502"} 1.000000`)
}
