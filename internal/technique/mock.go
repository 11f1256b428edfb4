package technique

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

//go:embed presets.yaml
var presetsYAML []byte

// DemoPresetIndex is the illustrative result shown by the demo analysis.
const DemoPresetIndex = 1

type preset struct {
	TechniqueScore   int                   `yaml:"technique_score"`
	InhalerType      string                `yaml:"inhaler_type"`
	ImprovementAreas []string              `yaml:"improvement_areas"`
	StepAnalysis     []domain.StepAnalysis `yaml:"step_analysis"`
}

func loadPresets() ([]preset, error) {
	var out []preset
	if err := yaml.Unmarshal(presetsYAML, &out); err != nil {
		return nil, fmt.Errorf("parse technique presets: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no technique presets")
	}
	return out, nil
}

// MockEvaluator stands in for a computer-vision model: it returns one of a few
// canned analyses at random.
type MockEvaluator struct {
	presets []preset
	mu      sync.Mutex
	rng     *rand.Rand
}

func NewMockEvaluator(rng *rand.Rand) (*MockEvaluator, error) {
	presets, err := loadPresets()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockEvaluator{presets: presets, rng: rng}, nil
}

func (m *MockEvaluator) Evaluate(ctx context.Context, in Input) (domain.InhalerAssessment, error) {
	if err := ctx.Err(); err != nil {
		return domain.InhalerAssessment{}, err
	}
	m.mu.Lock()
	i := m.rng.Intn(len(m.presets))
	m.mu.Unlock()

	a, _ := m.Preset(i)
	a.VideoURL = in.VideoURL
	return a, nil
}

// Len reports how many canned analyses exist.
func (m *MockEvaluator) Len() int { return len(m.presets) }

// Preset returns a fresh copy of canned analysis i.
func (m *MockEvaluator) Preset(i int) (domain.InhalerAssessment, bool) {
	if i < 0 || i >= len(m.presets) {
		return domain.InhalerAssessment{}, false
	}
	p := m.presets[i]
	return domain.InhalerAssessment{
		TechniqueScore:   p.TechniqueScore,
		StepAnalysis:     append([]domain.StepAnalysis{}, p.StepAnalysis...),
		ImprovementAreas: append([]string{}, p.ImprovementAreas...),
		InhalerType:      domain.ParseInhalerType(p.InhalerType),
	}, true
}
