package domain

import "github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain/health"

type (
	SymptomEntry          = health.SymptomEntry
	RiskAssessment        = health.RiskAssessment
	InhalerAssessment     = health.InhalerAssessment
	StepAnalysis          = health.StepAnalysis
	EnvironmentalFactors  = health.EnvironmentalFactors
	EnvironmentalSnapshot = health.EnvironmentalSnapshot

	SeverityLevel = health.SeverityLevel
	TriageLevel   = health.TriageLevel
	RiskLevel     = health.RiskLevel
	StepStatus    = health.StepStatus
	InhalerType   = health.InhalerType
)

const (
	SeverityMild     = health.SeverityMild
	SeverityModerate = health.SeverityModerate
	SeveritySevere   = health.SeveritySevere

	TriageSelfCare    = health.TriageSelfCare
	TriagePrimaryCare = health.TriagePrimaryCare
	TriageUrgent      = health.TriageUrgent

	RiskLow    = health.RiskLow
	RiskMedium = health.RiskMedium
	RiskHigh   = health.RiskHigh

	StepCorrect          = health.StepCorrect
	StepNeedsImprovement = health.StepNeedsImprovement
	StepIncorrect        = health.StepIncorrect

	InhalerMDI      = health.InhalerMDI
	InhalerDPI      = health.InhalerDPI
	InhalerSoftMist = health.InhalerSoftMist
)

var (
	ValidSeverity    = health.ValidSeverity
	ValidTriage      = health.ValidTriage
	ValidRiskLevel   = health.ValidRiskLevel
	ValidStepStatus  = health.ValidStepStatus
	ValidInhalerType = health.ValidInhalerType
	ParseInhalerType = health.ParseInhalerType
	ClampConfidence  = health.ClampConfidence
	ClampScore       = health.ClampScore

	RiskAssessmentSchema     = health.RiskAssessmentSchema
	SymptomAnalysisSchema    = health.SymptomAnalysisSchema
	EnvironmentSchema        = health.EnvironmentSchema
	TriggerEnvironmentSchema = health.TriggerEnvironmentSchema
)

// Models lists every table the store migrates.
func Models() []any {
	return []any{
		&health.SymptomEntry{},
		&health.RiskAssessment{},
		&health.InhalerAssessment{},
	}
}
