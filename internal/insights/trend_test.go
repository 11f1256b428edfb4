package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 10, 0, 0, 0, time.UTC)
}

func TestEncodeRiskReversesAndMaps(t *testing.T) {
	history := []domain.RiskAssessment{
		{RiskLevel: domain.RiskHigh, CreatedDate: day(3)},
		{RiskLevel: domain.RiskLow, CreatedDate: day(2)},
		{RiskLevel: domain.RiskMedium, CreatedDate: day(1)},
	}
	got := EncodeRisk(history)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Jan 1", "Jan 2", "Jan 3"}, []string{got[0].Date, got[1].Date, got[2].Date})
	assert.Equal(t, []int{2, 1, 3}, []int{got[0].Ordinal, got[1].Ordinal, got[2].Ordinal})

	// input untouched
	assert.Equal(t, domain.RiskHigh, history[0].RiskLevel)
	assert.Equal(t, day(3), history[0].CreatedDate)
}

func TestEncodeRiskUnknownLevelIsZero(t *testing.T) {
	got := EncodeRisk([]domain.RiskAssessment{{RiskLevel: "extreme", CreatedDate: day(5)}})
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Ordinal)
}

func TestEncodeRiskEmpty(t *testing.T) {
	assert.Empty(t, EncodeRisk(nil))
	assert.Empty(t, EncodeSeverity([]domain.SymptomEntry{}))
}

func TestEncodeSeverityCarriesEnvironment(t *testing.T) {
	withEnv := domain.SymptomEntry{SeverityLevel: domain.SeveritySevere, CreatedDate: day(9)}
	withEnv.SetEnvironment(domain.EnvironmentalFactors{PollenCount: 8, AirQualityIndex: 89})
	noEnv := domain.SymptomEntry{SeverityLevel: domain.SeverityMild, CreatedDate: day(8)}

	got := EncodeSeverity([]domain.SymptomEntry{withEnv, noEnv})
	require.Len(t, got, 2)

	assert.Equal(t, 1, got[0].Ordinal)
	assert.Equal(t, 0.0, *got[0].Pollen)
	assert.Equal(t, 0.0, *got[0].AQI)

	assert.Equal(t, 3, got[1].Ordinal)
	assert.Equal(t, 8.0, *got[1].Pollen)
	assert.Equal(t, 89.0, *got[1].AQI)
}

func TestOrdinalsStayInRange(t *testing.T) {
	for _, l := range []domain.RiskLevel{"", "low", "medium", "high", "LOW", "unknown"} {
		o := RiskOrdinal(l)
		assert.GreaterOrEqual(t, o, 0)
		assert.LessOrEqual(t, o, 3)
	}
	for _, l := range []domain.SeverityLevel{"", "mild", "moderate", "severe", "bad"} {
		o := SeverityOrdinal(l)
		assert.GreaterOrEqual(t, o, 0)
		assert.LessOrEqual(t, o, 3)
	}
	assert.Equal(t, "Medium", RiskLabel(2))
	assert.Equal(t, "Severe", SeverityLabel(3))
	assert.Equal(t, "", RiskLabel(0))
}
