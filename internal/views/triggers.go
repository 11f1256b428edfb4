package views

import (
	"fmt"
	"strconv"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/insights"
)

// EnvCard is one environmental reading. Level and Tone are empty for readings
// that have no scale, such as temperature.
type EnvCard struct {
	Title string        `json:"title"`
	Value string        `json:"value"`
	Unit  string        `json:"unit,omitempty"`
	Level string        `json:"level,omitempty"`
	Tone  insights.Tone `json:"tone,omitempty"`
}

func PollenLevel(v float64) string {
	switch {
	case v > 8:
		return "High"
	case v > 4:
		return "Medium"
	default:
		return "Low"
	}
}

func AQILevel(v float64) string {
	switch {
	case v > 150:
		return "Unhealthy"
	case v > 50:
		return "Moderate"
	default:
		return "Good"
	}
}

func LevelTone(level string) insights.Tone {
	switch level {
	case "High", "Unhealthy":
		return insights.ToneRed
	case "Medium", "Moderate":
		return insights.ToneYellow
	default:
		return insights.ToneGreen
	}
}

func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func PollenCard(env domain.EnvironmentalSnapshot) EnvCard {
	level := PollenLevel(env.Pollen)
	return EnvCard{Title: "Pollen Count", Value: formatReading(env.Pollen), Unit: "/ 12", Level: level, Tone: LevelTone(level)}
}

func AQICard(env domain.EnvironmentalSnapshot) EnvCard {
	level := AQILevel(env.AQI)
	return EnvCard{Title: "Air Quality", Value: formatReading(env.AQI), Unit: "AQI", Level: level, Tone: LevelTone(level)}
}

func TemperatureCard(env domain.EnvironmentalSnapshot) EnvCard {
	return EnvCard{Title: "Temperature", Value: fmt.Sprintf("%.0f", env.Temperature), Unit: "°F"}
}

func WeatherCard(env domain.EnvironmentalSnapshot) EnvCard {
	value := env.Weather
	if value == "" {
		value = "Unknown"
	}
	return EnvCard{Title: "Weather", Value: value}
}

type TriggersPage struct {
	State       AppState                     `json:"state"`
	Title       string                       `json:"title"`
	Disclaimer  string                       `json:"disclaimer"`
	Location    string                       `json:"location"`
	Environment domain.EnvironmentalSnapshot `json:"environment"`
	Cards       []EnvCard                    `json:"cards"`
	Chart       []insights.TrendPoint        `json:"chart"`
	ChartURL    string                       `json:"chart_url"`
}

// TriggersChartURL is where the PNG rendering of Chart is served.
const TriggersChartURL = "/api/triggers/chart.png"

func BuildTriggersPage(state AppState, location string, symptoms []domain.SymptomEntry, env domain.EnvironmentalSnapshot) TriggersPage {
	return TriggersPage{
		State:       state,
		Title:       "Environmental Triggers",
		Disclaimer:  PageDisclaimer(TabTriggers),
		Location:    location,
		Environment: env,
		Cards: []EnvCard{
			PollenCard(env),
			AQICard(env),
			TemperatureCard(env),
			WeatherCard(env),
		},
		Chart:    insights.EncodeSeverity(symptoms),
		ChartURL: TriggersChartURL,
	}
}
