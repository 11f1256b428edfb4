package narrative

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

// 2024-01-04 is a Thursday.
var thursday = time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC)

func TestDemoEnvironmentFollowsWeekday(t *testing.T) {
	env := DemoEnvironment(thursday, rand.New(rand.NewSource(1)))
	assert.Equal(t, 8.0, env.Pollen)
	assert.Equal(t, 89.0, env.AQI)
	assert.Equal(t, "Windy", env.Weather)
	assert.GreaterOrEqual(t, env.Temperature, 15.0)
	assert.LessOrEqual(t, env.Temperature, 28.0)
	assert.GreaterOrEqual(t, env.Humidity, 40.0)
	assert.LessOrEqual(t, env.Humidity, 80.0)

	monday := DemoEnvironment(thursday.AddDate(0, 0, -3), rand.New(rand.NewSource(1)))
	assert.Equal(t, "Clear", monday.Weather)
}

func TestAnalyzeSymptomsByRule(t *testing.T) {
	out := AnalyzeSymptomsByRule("I've been wheezing all night")
	assert.Equal(t, "moderate", out["severity_level"])
	assert.Equal(t, "primary_care", out["triage_level"])
	assert.Contains(t, out["response"], "rescue inhaler")

	out = AnalyzeSymptomsByRule("My lips turned blue lips and I cannot breathe")
	assert.Equal(t, "severe", out["severity_level"])
	assert.Equal(t, "urgent", out["triage_level"])

	out = AnalyzeSymptomsByRule("slight headache")
	assert.Equal(t, "mild", out["severity_level"])
	assert.Equal(t, "self_care", out["triage_level"])
	assert.Equal(t, []any{"general symptoms"}, out["keywords"])
}

func TestAnalyzeSymptomsByRuleCapsKeywords(t *testing.T) {
	out := AnalyzeSymptomsByRule("cough wheeze breathing chest lung asthma pollen dust")
	assert.Len(t, out["keywords"], 5)
}

func TestPredictRiskByRule(t *testing.T) {
	low := PredictRiskByRule([]string{"slight sniffle"}, 2, 45, "Clear")
	assert.Equal(t, "low", low["risk_level"])
	assert.Equal(t, []any{"Minimal symptoms", "Favorable conditions"}, low["contributing_factors"])
	assert.InDelta(t, 0.55, low["confidence_score"], 1e-9)

	high := PredictRiskByRule([]string{"severe wheeze", "worse at night"}, 10, 120, "Windy")
	assert.Equal(t, "high", high["risk_level"])
	assert.Equal(t, 0.85, high["confidence_score"])
	assert.Contains(t, high["contributing_factors"], "High pollen count (10/12)")
	assert.Contains(t, high["contributing_factors"], "Poor air quality (AQI 120)")
	assert.Contains(t, high["contributing_factors"], "Challenging weather (Windy)")
}

func TestDemoInvokerShapes(t *testing.T) {
	inv := NewDemoInvoker(func() time.Time { return thursday }, rand.New(rand.NewSource(7)))
	ctx := context.Background()

	env, err := inv.Invoke(ctx, Request{Prompt: "env", Shape: Shape{Name: ShapeEnvironment, Schema: domain.EnvironmentSchema()}})
	require.NoError(t, err)
	assert.Equal(t, "Windy", env["weather"])

	trig, err := inv.Invoke(ctx, Request{Prompt: "env", Shape: Shape{Name: ShapeTriggerEnvironment, Schema: domain.TriggerEnvironmentSchema()}})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, trig["temperature"], 59.0)

	risk, err := inv.Invoke(ctx, Request{
		Prompt: "risk",
		Shape:  Shape{Name: ShapeRiskAssessment, Schema: domain.RiskAssessmentSchema()},
		Facts:  map[string]any{FactSymptoms: []string{"cough"}, FactPollen: 2.0, FactAQI: 45.0, FactWeather: "Clear"},
	})
	require.NoError(t, err)
	assert.Equal(t, "low", risk["risk_level"])

	_, err = inv.Invoke(ctx, Request{Prompt: "x", Shape: Shape{Name: "unknown", Schema: map[string]any{}}})
	require.Error(t, err)
}

func TestInstrumentValidatesAndRejectsEmpty(t *testing.T) {
	empty := InvokerFunc(func(ctx context.Context, req Request) (map[string]any, error) {
		return map[string]any{}, nil
	})
	inv := Instrument("fake", empty, logger.Nop())

	_, err := inv.Invoke(context.Background(), Request{Shape: Shape{Name: "x", Schema: map[string]any{}}})
	require.Error(t, err)

	_, err = inv.Invoke(context.Background(), Request{Prompt: "p", Shape: Shape{Name: "x", Schema: map[string]any{}}})
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), logger.Nop(), "medgemma")
	require.Error(t, err)

	inv, err := New(context.Background(), logger.Nop(), "demo")
	require.NoError(t, err)
	require.NotNil(t, inv)
}
