package views

import (
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/insights"
)

type QuickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tab         Tab    `json:"tab"`
	Path        string `json:"path"`
}

var quickActions = []QuickAction{
	{Title: "Check Symptoms", Description: "Describe how you're feeling", Tab: TabSymptoms, Path: "/symptom-check"},
	{Title: "View Triggers", Description: "Environmental conditions", Tab: TabTriggers, Path: "/triggers"},
	{Title: "Risk Forecast", Description: "72-hour predictions", Tab: TabRisk, Path: "/risk-forecast"},
	{Title: "Inhaler Technique", Description: "Improve your technique", Tab: TabTechnique, Path: "/inhaler-technique"},
}

type Dashboard struct {
	State          AppState                `json:"state"`
	Greeting       string                  `json:"greeting"`
	Disclaimer     string                  `json:"disclaimer"`
	Gauge          RiskGauge               `json:"gauge"`
	Environment    []EnvCard               `json:"environment"`
	QuickActions   []QuickAction           `json:"quick_actions"`
	RecentActivity []insights.ActivityItem `json:"recent_activity"`
}

func BuildDashboard(state AppState, risk *domain.RiskAssessment, env domain.EnvironmentalSnapshot, symptoms []domain.SymptomEntry, assessments []domain.InhalerAssessment) Dashboard {
	return Dashboard{
		State:      state,
		Greeting:   "Your health companion for asthma and allergy awareness",
		Disclaimer: PageDisclaimer(TabHome),
		Gauge:      GaugeFor(risk),
		Environment: []EnvCard{
			PollenCard(env),
			AQICard(env),
			WeatherCard(env),
		},
		QuickActions:   append([]QuickAction{}, quickActions...),
		RecentActivity: insights.MergeActivity(symptoms, assessments, insights.RecentActivityLimit),
	}
}
