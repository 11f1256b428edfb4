package technique

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

func allSteps(v bool) map[string]bool {
	out := map[string]bool{}
	for _, s := range MDIChecklist {
		out[s.ID] = v
	}
	return out
}

func TestRuleEvaluatorAllCorrect(t *testing.T) {
	a, err := NewRuleEvaluator().Evaluate(context.Background(), Input{Steps: allSteps(true)})
	require.NoError(t, err)
	assert.Equal(t, 100, a.TechniqueScore)
	assert.Equal(t, []string{"Excellent technique! Continue this proper form"}, []string(a.ImprovementAreas))
	for _, s := range a.StepAnalysis {
		assert.Equal(t, domain.StepCorrect, s.Status)
		assert.Equal(t, "✅ Correct technique", s.Feedback)
	}
	assert.Equal(t, domain.InhalerMDI, a.InhalerType)
}

func TestRuleEvaluatorAllFalse(t *testing.T) {
	a, err := NewRuleEvaluator().Evaluate(context.Background(), Input{Steps: allSteps(false)})
	require.NoError(t, err)
	assert.Equal(t, 0, a.TechniqueScore)
	require.Len(t, a.ImprovementAreas, 5)
	assert.Equal(t, "Consider asking your healthcare provider for technique demonstration", a.ImprovementAreas[0])
	assert.Equal(t, "Focus on: Shake inhaler vigorously for 3-5 seconds", a.ImprovementAreas[1])
	assert.Equal(t, "⚠️ Needs improvement: Shake inhaler vigorously for 3-5 seconds", a.StepAnalysis[0].Feedback)
}

func TestRuleEvaluatorMissingSteps(t *testing.T) {
	a, err := NewRuleEvaluator().Evaluate(context.Background(), Input{Steps: map[string]bool{"shake_inhaler": true}})
	require.NoError(t, err)
	assert.Equal(t, 14, a.TechniqueScore)
	assert.Equal(t, domain.StepIncorrect, a.StepAnalysis[1].Status)
	assert.Equal(t, "❌ Step missing: Remove protective cap and check for obstructions", a.StepAnalysis[1].Feedback)
	assert.Equal(t, "Remember to: Remove protective cap and check for obstructions", a.ImprovementAreas[1])
}

func TestRuleEvaluatorScoreFormula(t *testing.T) {
	for k := 0; k <= len(MDIChecklist); k++ {
		steps := allSteps(false)
		for _, s := range MDIChecklist[:k] {
			steps[s.ID] = true
		}
		a, err := NewRuleEvaluator().Evaluate(context.Background(), Input{Steps: steps})
		require.NoError(t, err)
		want := int(math.Round(100 * float64(k) / 7))
		assert.Equal(t, want, a.TechniqueScore, "k=%d", k)
		assert.LessOrEqual(t, len(a.ImprovementAreas), 5)
	}
}

func TestRuleEvaluatorBands(t *testing.T) {
	steps := allSteps(true)
	steps["hold_breath"] = false
	a, _ := NewRuleEvaluator().Evaluate(context.Background(), Input{Steps: steps})
	assert.Equal(t, 86, a.TechniqueScore)
	assert.Equal(t, []string{
		"Excellent technique! Continue this proper form",
		"Focus on: Hold breath for 10 seconds or as long as comfortable",
	}, []string(a.ImprovementAreas))

	steps["seal_lips"] = false
	a, _ = NewRuleEvaluator().Evaluate(context.Background(), Input{Steps: steps})
	assert.Equal(t, 71, a.TechniqueScore)
	assert.Equal(t, "Good technique! Focus on the missed steps for optimal medication delivery", a.ImprovementAreas[0])
}

func TestMockEvaluatorReturnsPresetWithVideo(t *testing.T) {
	m, err := NewMockEvaluator(rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	a, err := m.Evaluate(context.Background(), Input{VideoURL: "https://storage.example/v.mp4"})
	require.NoError(t, err)
	assert.Contains(t, []int{92, 74, 58}, a.TechniqueScore)
	assert.Equal(t, "https://storage.example/v.mp4", a.VideoURL)
	assert.Len(t, a.StepAnalysis, 5)
}

func TestMockEvaluatorPresetIsACopy(t *testing.T) {
	m, err := NewMockEvaluator(nil)
	require.NoError(t, err)

	demo, ok := m.Preset(DemoPresetIndex)
	require.True(t, ok)
	assert.Equal(t, 74, demo.TechniqueScore)
	assert.Equal(t, []string{"Exhalation", "Inhalation speed"}, []string(demo.ImprovementAreas))
	assert.Equal(t, domain.StepNeedsImprovement, demo.StepAnalysis[1].Status)

	demo.StepAnalysis[0].Feedback = "changed"
	again, _ := m.Preset(DemoPresetIndex)
	assert.Equal(t, "Good shaking.", again.StepAnalysis[0].Feedback)

	_, ok = m.Preset(9)
	assert.False(t, ok)
}

func TestEvaluatorsShareInterface(t *testing.T) {
	m, err := NewMockEvaluator(nil)
	require.NoError(t, err)
	for _, ev := range []Evaluator{m, NewRuleEvaluator()} {
		a, err := ev.Evaluate(context.Background(), Input{Steps: allSteps(true)})
		require.NoError(t, err)
		assert.NotEmpty(t, a.StepAnalysis)
	}
}
