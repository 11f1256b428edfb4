package technique

import (
	"context"
	"math"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

const maxImprovementAreas = 5

type checklistStep struct {
	ID          string
	Name        string
	Description string
}

// MDIChecklist is the metered-dose inhaler sequence, in order.
var MDIChecklist = []checklistStep{
	{ID: "shake_inhaler", Name: "Shake inhaler", Description: "Shake inhaler vigorously for 3-5 seconds"},
	{ID: "remove_cap", Name: "Remove cap", Description: "Remove protective cap and check for obstructions"},
	{ID: "exhale_fully", Name: "Exhale fully", Description: "Exhale fully, away from inhaler"},
	{ID: "seal_lips", Name: "Seal lips", Description: "Form tight seal around mouthpiece with lips"},
	{ID: "press_breathe", Name: "Press and breathe", Description: "Press down and breathe in slowly and deeply"},
	{ID: "hold_breath", Name: "Hold breath", Description: "Hold breath for 10 seconds or as long as comfortable"},
	{ID: "exhale_slowly", Name: "Exhale slowly", Description: "Exhale slowly and replace cap"},
}

// RuleEvaluator scores a self-reported checklist against MDIChecklist.
type RuleEvaluator struct{}

func NewRuleEvaluator() *RuleEvaluator { return &RuleEvaluator{} }

func (RuleEvaluator) Evaluate(ctx context.Context, in Input) (domain.InhalerAssessment, error) {
	if err := ctx.Err(); err != nil {
		return domain.InhalerAssessment{}, err
	}

	steps := make([]domain.StepAnalysis, 0, len(MDIChecklist))
	var tips []string
	correct := 0
	for _, s := range MDIChecklist {
		done, present := in.Steps[s.ID]
		switch {
		case present && done:
			correct++
			steps = append(steps, domain.StepAnalysis{StepName: s.Name, Status: domain.StepCorrect, Feedback: "✅ Correct technique"})
		case present:
			steps = append(steps, domain.StepAnalysis{StepName: s.Name, Status: domain.StepNeedsImprovement, Feedback: "⚠️ Needs improvement: " + s.Description})
			tips = append(tips, "Focus on: "+s.Description)
		default:
			steps = append(steps, domain.StepAnalysis{StepName: s.Name, Status: domain.StepIncorrect, Feedback: "❌ Step missing: " + s.Description})
			tips = append(tips, "Remember to: "+s.Description)
		}
	}

	score := ChecklistScore(correct, len(MDIChecklist))
	switch {
	case score < 60:
		tips = append([]string{"Consider asking your healthcare provider for technique demonstration"}, tips...)
	case score < 80:
		tips = append([]string{"Good technique! Focus on the missed steps for optimal medication delivery"}, tips...)
	default:
		if len(tips) > 2 {
			tips = tips[:2]
		}
		tips = append([]string{"Excellent technique! Continue this proper form"}, tips...)
	}
	if len(tips) > maxImprovementAreas {
		tips = tips[:maxImprovementAreas]
	}

	inhaler := in.InhalerType
	if inhaler == "" {
		inhaler = domain.InhalerMDI
	}
	return domain.InhalerAssessment{
		TechniqueScore:   score,
		StepAnalysis:     steps,
		ImprovementAreas: tips,
		InhalerType:      inhaler,
	}, nil
}

// ChecklistScore is round(100 * correct / total).
func ChecklistScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
