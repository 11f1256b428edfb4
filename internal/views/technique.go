package views

import (
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/insights"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/technique"
)

type StepIcon string

const (
	IconCheck StepIcon = "check"
	IconAlert StepIcon = "alert"
	IconX     StepIcon = "x"
)

func IconFor(status domain.StepStatus) StepIcon {
	switch status {
	case domain.StepCorrect:
		return IconCheck
	case domain.StepNeedsImprovement:
		return IconAlert
	default:
		return IconX
	}
}

type StepView struct {
	domain.StepAnalysis
	Icon StepIcon      `json:"icon"`
	Tone insights.Tone `json:"tone"`
}

type TechniqueFeedback struct {
	State            AppState                 `json:"state"`
	Assessment       domain.InhalerAssessment `json:"assessment"`
	Score            int                      `json:"score"`
	ScoreTone        insights.Tone            `json:"score_tone"`
	Steps            []StepView               `json:"steps"`
	ImprovementAreas []string                 `json:"improvement_areas"`
	Disclaimer       string                   `json:"disclaimer"`
}

var statusTone = map[domain.StepStatus]insights.Tone{
	domain.StepCorrect:          insights.ToneGreen,
	domain.StepNeedsImprovement: insights.ToneYellow,
}

func BuildTechniqueFeedback(state AppState, a domain.InhalerAssessment) TechniqueFeedback {
	steps := make([]StepView, 0, len(a.StepAnalysis))
	for _, s := range a.StepAnalysis {
		tone, ok := statusTone[s.Status]
		if !ok {
			tone = insights.ToneRed
		}
		steps = append(steps, StepView{StepAnalysis: s, Icon: IconFor(s.Status), Tone: tone})
	}
	return TechniqueFeedback{
		State:            state,
		Assessment:       a,
		Score:            a.TechniqueScore,
		ScoreTone:        insights.TechniqueTone(a.TechniqueScore),
		Steps:            steps,
		ImprovementAreas: append([]string{}, a.ImprovementAreas...),
		Disclaimer:       PageDisclaimer(TabTechnique),
	}
}

type ChecklistItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Checklist is the step list the checklist form renders.
func Checklist() []ChecklistItem {
	out := make([]ChecklistItem, 0, len(technique.MDIChecklist))
	for _, s := range technique.MDIChecklist {
		out = append(out, ChecklistItem{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	return out
}

type AssessmentHistory struct {
	State       AppState        `json:"state"`
	Disclaimer  string          `json:"disclaimer"`
	Checklist   []ChecklistItem `json:"checklist"`
	Assessments []AssessmentRow `json:"assessments"`
}

type AssessmentRow struct {
	Assessment domain.InhalerAssessment `json:"assessment"`
	Badge      insights.Badge           `json:"badge"`
}

func BuildAssessmentHistory(state AppState, assessments []domain.InhalerAssessment) AssessmentHistory {
	rows := make([]AssessmentRow, 0, len(assessments))
	for _, a := range assessments {
		rows = append(rows, AssessmentRow{Assessment: a, Badge: insights.ScoreBadge(a.TechniqueScore)})
	}
	return AssessmentHistory{
		State:       state,
		Disclaimer:  PageDisclaimer(TabTechnique),
		Checklist:   Checklist(),
		Assessments: rows,
	}
}
