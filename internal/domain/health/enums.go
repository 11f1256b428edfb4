package health

import "strings"

type SeverityLevel string

const (
	SeverityMild     SeverityLevel = "mild"
	SeverityModerate SeverityLevel = "moderate"
	SeveritySevere   SeverityLevel = "severe"
)

type TriageLevel string

const (
	TriageSelfCare    TriageLevel = "self_care"
	TriagePrimaryCare TriageLevel = "primary_care"
	TriageUrgent      TriageLevel = "urgent"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type StepStatus string

const (
	StepCorrect          StepStatus = "correct"
	StepNeedsImprovement StepStatus = "needs_improvement"
	StepIncorrect        StepStatus = "incorrect"
)

type InhalerType string

const (
	InhalerMDI      InhalerType = "mdi"
	InhalerDPI      InhalerType = "dpi"
	InhalerSoftMist InhalerType = "soft_mist"
)

var (
	SeverityLevels = []SeverityLevel{SeverityMild, SeverityModerate, SeveritySevere}
	TriageLevels   = []TriageLevel{TriageSelfCare, TriagePrimaryCare, TriageUrgent}
	RiskLevels     = []RiskLevel{RiskLow, RiskMedium, RiskHigh}
	StepStatuses   = []StepStatus{StepCorrect, StepNeedsImprovement, StepIncorrect}
	InhalerTypes   = []InhalerType{InhalerMDI, InhalerDPI, InhalerSoftMist}
)

func ValidSeverity(s string) bool {
	return oneOf(SeverityLevels, s)
}

func ValidTriage(s string) bool {
	return oneOf(TriageLevels, s)
}

func ValidRiskLevel(s string) bool {
	return oneOf(RiskLevels, s)
}

func ValidStepStatus(s string) bool {
	return oneOf(StepStatuses, s)
}

func ValidInhalerType(s string) bool {
	return oneOf(InhalerTypes, s)
}

// ParseInhalerType accepts the spellings clients send ("MDI", "soft-mist") and
// falls back to mdi for anything unknown.
func ParseInhalerType(s string) InhalerType {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "-", "_")
	v = strings.ReplaceAll(v, " ", "_")
	if ValidInhalerType(v) {
		return InhalerType(v)
	}
	return InhalerMDI
}

func oneOf[T ~string](set []T, s string) bool {
	for _, v := range set {
		if string(v) == s {
			return true
		}
	}
	return false
}

func enumStrings[T ~string](set []T) []any {
	out := make([]any, 0, len(set))
	for _, v := range set {
		out = append(out, string(v))
	}
	return out
}
