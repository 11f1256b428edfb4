package health

import (
	"context"

	"gorm.io/gorm"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type InhalerAssessmentRepo interface {
	List(ctx context.Context, tx *gorm.DB, order string, limit int) ([]*domain.InhalerAssessment, error)
	Create(ctx context.Context, tx *gorm.DB, a *domain.InhalerAssessment) (*domain.InhalerAssessment, error)
}

type inhalerAssessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInhalerAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) InhalerAssessmentRepo {
	repoLog := baseLog.With("repo", "InhalerAssessmentRepo")
	return &inhalerAssessmentRepo{db: db, log: repoLog}
}

func (r *inhalerAssessmentRepo) List(ctx context.Context, tx *gorm.DB, order string, limit int) ([]*domain.InhalerAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listOrdered[domain.InhalerAssessment](transaction.WithContext(ctx), order, limit)
}

func (r *inhalerAssessmentRepo) Create(ctx context.Context, tx *gorm.DB, a *domain.InhalerAssessment) (*domain.InhalerAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if a == nil {
		return nil, invalid("nil inhaler assessment")
	}
	for _, step := range a.StepAnalysis {
		if !domain.ValidStepStatus(string(step.Status)) {
			return nil, invalid("step %q has status %q", step.StepName, step.Status)
		}
	}
	if a.InhalerType != "" && !domain.ValidInhalerType(string(a.InhalerType)) {
		return nil, invalid("inhaler_type %q", a.InhalerType)
	}
	if a.ImprovementAreas == nil {
		a.ImprovementAreas = []string{}
	}
	if err := transaction.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}
