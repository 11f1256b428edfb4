package narrative

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

// Weekday tables for the demo environment, Monday first.
var (
	demoPollen  = [7]float64{2, 3, 5, 8, 10, 4, 6}
	demoAQI     = [7]float64{45, 62, 38, 89, 55, 41, 67}
	demoWeather = [7]string{"Clear", "Partly Cloudy", "Rainy", "Windy", "Humid", "Dry", "Foggy"}
)

func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DemoEnvironment returns the synthetic reading for the day of now. Pollen, AQI and
// weather follow the weekday; temperature (°C) and humidity are drawn from rng.
func DemoEnvironment(now time.Time, rng *rand.Rand) domain.EnvironmentalSnapshot {
	idx := mondayIndex(now)
	temp := 15 + rng.Float64()*13
	return domain.EnvironmentalSnapshot{
		Pollen:      demoPollen[idx],
		AQI:         demoAQI[idx],
		Weather:     demoWeather[idx],
		Temperature: math.Round(temp*10) / 10,
		Humidity:    float64(40 + rng.Intn(41)),
		ObservedAt:  now,
	}
}

// CelsiusToFahrenheit rounds to one decimal.
func CelsiusToFahrenheit(c float64) float64 {
	return math.Round((c*9/5+32)*10) / 10
}

type demoInvoker struct {
	now func() time.Time
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDemoInvoker answers every shape with deterministic rules instead of a model.
// Nil arguments default to the wall clock and a time-seeded source.
func NewDemoInvoker(now func() time.Time, rng *rand.Rand) Invoker {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &demoInvoker{now: now, rng: rng}
}

func (d *demoInvoker) Invoke(ctx context.Context, req Request) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch req.Shape.Name {
	case ShapeSymptomAnalysis:
		text, _ := req.Facts[FactSymptomText].(string)
		if text == "" {
			text = req.Prompt
		}
		return AnalyzeSymptomsByRule(text), nil
	case ShapeEnvironment:
		env := d.environment()
		return map[string]any{"pollen": env.Pollen, "aqi": env.AQI, "weather": env.Weather}, nil
	case ShapeTriggerEnvironment:
		env := d.environment()
		return map[string]any{
			"pollen":      env.Pollen,
			"aqi":         env.AQI,
			"temperature": CelsiusToFahrenheit(env.Temperature),
			"weather":     env.Weather,
		}, nil
	case ShapeRiskAssessment:
		return PredictRiskByRule(
			stringsFact(req.Facts[FactSymptoms]),
			numberFact(req.Facts[FactPollen]),
			numberFact(req.Facts[FactAQI]),
			fmt.Sprint(valueOr(req.Facts[FactWeather], "")),
		), nil
	default:
		return nil, fmt.Errorf("demo provider: unsupported shape %q", req.Shape.Name)
	}
}

func (d *demoInvoker) environment() domain.EnvironmentalSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DemoEnvironment(d.now(), d.rng)
}

var (
	severeKeywords      = []string{"severe", "extreme", "cannot breathe", "emergency", "hospital", "chest pain", "blue lips", "unconscious"}
	moderateKeywords    = []string{"moderate", "difficult", "worse", "increasing", "wheezing", "tight chest", "shortness of breath"}
	respiratoryKeywords = []string{"cough", "wheeze", "breathe", "breathing", "chest", "lung", "asthma", "shortness", "tight"}
	allergyKeywords     = []string{"allergy", "allergic", "pollen", "dust", "pet", "food", "rash", "itchy", "hives", "swelling"}
)

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// AnalyzeSymptomsByRule classifies a description with keyword rules. The result
// matches domain.SymptomAnalysisSchema.
func AnalyzeSymptomsByRule(text string) map[string]any {
	lower := strings.ToLower(text)

	severity := domain.SeverityMild
	switch {
	case containsAny(lower, severeKeywords):
		severity = domain.SeveritySevere
	case containsAny(lower, moderateKeywords):
		severity = domain.SeverityModerate
	}

	keywords := make([]any, 0, 5)
	for _, k := range append(append([]string{}, respiratoryKeywords...), allergyKeywords...) {
		if len(keywords) == 5 {
			break
		}
		if strings.Contains(lower, k) {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		keywords = append(keywords, "general symptoms")
	}

	triage := domain.TriageSelfCare
	switch severity {
	case domain.SeveritySevere:
		triage = domain.TriageUrgent
	case domain.SeverityModerate:
		triage = domain.TriagePrimaryCare
	}

	respiratory := strings.Contains(lower, "wheez") || strings.Contains(lower, "breath")
	var explanation string
	switch {
	case respiratory:
		explanation = "You've described respiratory symptoms that may be related to asthma or allergies. These symptoms can vary in severity and may be triggered by environmental factors."
	case containsAny(lower, allergyKeywords):
		explanation = "Your symptoms suggest possible allergic reactions. Allergies can manifest in various ways and identifying triggers is important for management."
	default:
		explanation = "Based on your symptom description, this appears to be a general health concern that would benefit from professional medical evaluation."
	}

	recs := []string{
		"Keep a symptom diary to track patterns and potential triggers",
		"Monitor your symptoms and note any changes in severity",
		"Consider environmental factors that might be contributing to your symptoms",
	}
	if severity == domain.SeveritySevere {
		recs = append([]string{"Seek immediate medical attention if symptoms worsen"}, recs...)
	} else if strings.Contains(lower, "wheez") || strings.Contains(lower, "asthma") {
		recs = append(recs, "Ensure you have your rescue inhaler available if prescribed")
	}
	recs = append(recs, "Consult with healthcare provider for proper evaluation and personalized treatment plan")
	if len(recs) > 5 {
		recs = recs[:5]
	}

	var b strings.Builder
	b.WriteString(explanation)
	b.WriteString("\n")
	for _, r := range recs {
		b.WriteString("\n- ")
		b.WriteString(r)
	}
	b.WriteString("\n\nThis is educational information only, not a diagnosis.")

	return map[string]any{
		"severity_level": string(severity),
		"triage_level":   string(triage),
		"keywords":       keywords,
		"response":       b.String(),
	}
}

var (
	riskSevereWords   = []string{"severe", "extreme", "cannot", "emergency", "hospital"}
	riskModerateWords = []string{"moderate", "difficult", "worse", "increasing"}
)

// PredictRiskByRule scores recent symptoms and conditions into a forecast that
// matches domain.RiskAssessmentSchema.
func PredictRiskByRule(symptoms []string, pollen, aqi float64, weather string) map[string]any {
	severityScore := 0
	for _, s := range symptoms {
		lower := strings.ToLower(s)
		switch {
		case containsAny(lower, riskSevereWords):
			severityScore += 3
		case containsAny(lower, riskModerateWords):
			severityScore += 2
		default:
			severityScore++
		}
	}

	envRisk := 0
	var factors []string
	if pollen > 7 {
		envRisk += 2
		factors = append(factors, fmt.Sprintf("High pollen count (%g/12)", pollen))
	}
	switch {
	case aqi > 100:
		envRisk += 2
		factors = append(factors, fmt.Sprintf("Poor air quality (AQI %g)", aqi))
	case aqi > 50:
		envRisk++
		factors = append(factors, fmt.Sprintf("Moderate air quality (AQI %g)", aqi))
	}
	switch weather {
	case "Windy", "Humid", "Foggy":
		envRisk++
		factors = append(factors, fmt.Sprintf("Challenging weather (%s)", weather))
	}

	total := severityScore + envRisk
	confidence := math.Min(0.85, 0.5+float64(total)*0.05)

	level := domain.RiskLow
	var recs []string
	switch {
	case total >= 8:
		level = domain.RiskHigh
		if len(factors) == 0 {
			factors = []string{"Frequent severe symptoms"}
		}
		recs = []string{
			"Keep your rescue inhaler with you at all times",
			"Limit outdoor activity while conditions are poor",
			"Contact your healthcare provider if symptoms increase",
		}
	case total >= 4:
		level = domain.RiskMedium
		if len(factors) == 0 {
			factors = []string{"Moderate symptom frequency", "Some environmental triggers"}
		}
		recs = []string{
			"Follow your asthma action plan",
			"Check pollen and air quality before going outside",
		}
	default:
		if len(factors) == 0 {
			factors = []string{"Minimal symptoms", "Favorable conditions"}
		}
		recs = []string{"Continue your usual care plan", "Keep logging symptoms to spot patterns"}
	}

	return map[string]any{
		"risk_level":           string(level),
		"confidence_score":     math.Round(confidence*100) / 100,
		"contributing_factors": toAny(factors),
		"recommendations":      toAny(recs),
	}
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func stringsFact(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, x := range t {
			out = append(out, fmt.Sprint(x))
		}
		return out
	default:
		return nil
	}
}

func numberFact(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return 0
	}
}

func valueOr(v any, def any) any {
	if v == nil {
		return def
	}
	return v
}
