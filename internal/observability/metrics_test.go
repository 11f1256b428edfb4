package observability

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/api/risk", "200", time.Millisecond)
	m.ObserveNarrative("openai", "risk_assessment", time.Second, nil)
	m.IncEvent("risk.created", "kafka", nil)
	m.IncRiskResult(true)
	m.IncAPIError("/api/risk", "risk_load_failed")

	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWritePrometheus(t *testing.T) {
	m := newMetrics()
	m.ObserveAPI("POST", "/api/risk/calculate", "502", 300*time.Millisecond)
	m.ObserveNarrative("demo", "symptom_analysis", 2*time.Second, errors.New("boom"))
	m.IncUpload("s3", nil)
	m.IncAPIError("/api/risk/calculate", "risk_calculation_failed")
	m.IncRiskResult(true)
	m.IncRiskResult(false)
	m.IncRiskResult(false)

	assert.Equal(t, 2.0, m.riskFenced.Value("applied"))
	assert.Equal(t, 1.0, m.riskFenced.Value("stale"))

	var buf bytes.Buffer
	require.NoError(t, m.WritePrometheus(&buf))
	out := buf.String()
	assert.Contains(t, out, `aerosense_api_requests_total{method="POST",route="/api/risk/calculate",status="502"} 1.000000`)
	assert.Contains(t, out, `aerosense_narrative_requests_total{provider="demo",shape="symptom_analysis",status="error"} 1.000000`)
	assert.Contains(t, out, `aerosense_api_request_duration_seconds_bucket{method="POST",route="/api/risk/calculate",le="0.5"} 1`)
	assert.Contains(t, out, `aerosense_api_request_duration_seconds_bucket{method="POST",route="/api/risk/calculate",le="0.25"} 0`)
	assert.Contains(t, out, `aerosense_uploads_total{backend="s3",status="ok"} 1.000000`)
	assert.Contains(t, out, "# TYPE aerosense_api_inflight_requests gauge")
	assert.Contains(t, out, `aerosense_api_errors_total{route="/api/risk/calculate",code="risk_calculation_failed"} 1.000000`)
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "", labelString(nil, nil))
	assert.Equal(t, `{a="x",b="unknown"}`, labelString([]string{"a", "b"}, []string{"x"}))
	assert.Equal(t, `{a="q\"uote"}`, labelString([]string{"a"}, []string{`q"uote`}))
	assert.Equal(t, `{le="1"}`, withLe("", "1"))
	assert.Equal(t, `{a="x",le="1"}`, withLe(`{a="x"}`, "1"))
}

func TestParseHeaders(t *testing.T) {
	assert.Nil(t, ParseHeaders(""))
	assert.Nil(t, ParseHeaders("broken,=x"))
	assert.Equal(t, map[string]string{"api-key": "abc", "x": "1"}, ParseHeaders(" api-key=abc , x=1 "))
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 1.0, clampRatio(3))
	assert.Equal(t, 0.25, clampRatio(0.25))
}
