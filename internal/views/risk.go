package views

import (
	"math"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/insights"
)

type RiskGauge struct {
	Level             domain.RiskLevel `json:"level"`
	Label             string           `json:"label"`
	Description       string           `json:"description"`
	Tone              insights.Tone    `json:"tone"`
	ConfidencePercent int              `json:"confidence_percent"`
}

// GaugeFor renders the 72-hour gauge. A missing forecast shows as Low with no
// confidence.
func GaugeFor(r *domain.RiskAssessment) RiskGauge {
	if r == nil {
		return lowGauge(0)
	}
	pct := int(math.Round(domain.ClampConfidence(r.ConfidenceScore) * 100))
	switch r.RiskLevel {
	case domain.RiskHigh:
		return RiskGauge{
			Level:             domain.RiskHigh,
			Label:             "High Risk",
			Description:       "Increased chance of symptoms in next 72 hours",
			Tone:              insights.ToneRed,
			ConfidencePercent: pct,
		}
	case domain.RiskMedium:
		return RiskGauge{
			Level:             domain.RiskMedium,
			Label:             "Medium Risk",
			Description:       "Moderate chance of symptoms in next 72 hours",
			Tone:              insights.ToneYellow,
			ConfidencePercent: pct,
		}
	default:
		return lowGauge(pct)
	}
}

func lowGauge(pct int) RiskGauge {
	return RiskGauge{
		Level:             domain.RiskLow,
		Label:             "Low Risk",
		Description:       "Lower chance of symptoms in next 72 hours",
		Tone:              insights.ToneGreen,
		ConfidencePercent: pct,
	}
}

type RiskPage struct {
	State               AppState                `json:"state"`
	Title               string                  `json:"title"`
	Disclaimer          string                  `json:"disclaimer"`
	Gauge               RiskGauge               `json:"gauge"`
	Current             *domain.RiskAssessment  `json:"current"`
	ContributingFactors []string                `json:"contributing_factors"`
	Recommendations     []string                `json:"recommendations"`
	History             []domain.RiskAssessment `json:"history"`
	Trend               []insights.TrendPoint   `json:"trend"`
	Stale               bool                    `json:"stale"`
}

// BuildRiskPage takes the history newest first; the trend comes out oldest first.
func BuildRiskPage(state AppState, current *domain.RiskAssessment, history []domain.RiskAssessment, stale bool) RiskPage {
	page := RiskPage{
		State:               state,
		Title:               "72-Hour Risk Forecast",
		Disclaimer:          PageDisclaimer(TabRisk),
		Gauge:               GaugeFor(current),
		Current:             current,
		ContributingFactors: []string{},
		Recommendations:     []string{},
		History:             history,
		Trend:               insights.EncodeRisk(history),
		Stale:               stale,
	}
	if page.History == nil {
		page.History = []domain.RiskAssessment{}
	}
	if current != nil {
		page.ContributingFactors = append(page.ContributingFactors, current.ContributingFactors...)
		page.Recommendations = append(page.Recommendations, current.Recommendations...)
	}
	return page
}
