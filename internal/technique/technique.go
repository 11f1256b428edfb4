package technique

import (
	"context"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

// Input is everything an evaluator may look at. Video-based evaluators read
// VideoURL; the checklist evaluator reads Steps (step id -> performed correctly).
type Input struct {
	VideoURL    string
	InhalerType domain.InhalerType
	Steps       map[string]bool
}

// Evaluator scores one inhaler technique attempt. Implementations return an unsaved
// assessment; persistence is the caller's job.
type Evaluator interface {
	Evaluate(ctx context.Context, in Input) (domain.InhalerAssessment, error)
}
