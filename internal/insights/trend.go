package insights

import (
	"time"

	"github.com/samber/lo"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

// DateLabelLayout renders axis labels like "Jan 2".
const DateLabelLayout = "Jan 2"

// TrendPoint is one chart sample. Ordinal is 0 for levels the encoder does not know.
type TrendPoint struct {
	Date      string    `json:"date"`
	Ordinal   int       `json:"value"`
	Pollen    *float64  `json:"pollen,omitempty"`
	AQI       *float64  `json:"aqi,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RiskOrdinal maps low/medium/high to 1/2/3 for the trend chart; unknown levels are 0.
func RiskOrdinal(level domain.RiskLevel) int {
	switch level {
	case domain.RiskLow:
		return 1
	case domain.RiskMedium:
		return 2
	case domain.RiskHigh:
		return 3
	default:
		return 0
	}
}

// SeverityOrdinal maps mild/moderate/severe to 1/2/3; unknown levels are 0.
func SeverityOrdinal(level domain.SeverityLevel) int {
	switch level {
	case domain.SeverityMild:
		return 1
	case domain.SeverityModerate:
		return 2
	case domain.SeveritySevere:
		return 3
	default:
		return 0
	}
}

var (
	riskLabels     = map[int]string{1: "Low", 2: "Medium", 3: "High"}
	severityLabels = map[int]string{1: "Mild", 2: "Moderate", 3: "Severe"}
)

// RiskLabel is the axis label for a risk ordinal, or "" outside 1..3.
func RiskLabel(ordinal int) string { return riskLabels[ordinal] }

// SeverityLabel is the axis label for a severity ordinal, or "" outside 1..3.
func SeverityLabel(ordinal int) string { return severityLabels[ordinal] }

// EncodeRisk turns a newest-first history into chart points, oldest first.
// The input slice is left untouched.
func EncodeRisk(history []domain.RiskAssessment) []TrendPoint {
	points := lo.Map(history, func(r domain.RiskAssessment, _ int) TrendPoint {
		return TrendPoint{
			Date:      r.CreatedDate.Format(DateLabelLayout),
			Ordinal:   RiskOrdinal(r.RiskLevel),
			Timestamp: r.CreatedDate,
		}
	})
	return lo.Reverse(points)
}

// EncodeSeverity is EncodeRisk for symptom entries. Pollen and AQI come from the
// entry's environmental snapshot, 0 when none was recorded.
func EncodeSeverity(entries []domain.SymptomEntry) []TrendPoint {
	points := lo.Map(entries, func(e domain.SymptomEntry, _ int) TrendPoint {
		var pollen, aqi float64
		if env := e.Environment(); env != nil {
			pollen, aqi = env.PollenCount, env.AirQualityIndex
		}
		return TrendPoint{
			Date:      e.CreatedDate.Format(DateLabelLayout),
			Ordinal:   SeverityOrdinal(e.SeverityLevel),
			Pollen:    lo.ToPtr(pollen),
			AQI:       lo.ToPtr(aqi),
			Timestamp: e.CreatedDate,
		}
	})
	return lo.Reverse(points)
}
