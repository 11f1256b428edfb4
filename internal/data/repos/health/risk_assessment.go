package health

import (
	"context"

	"gorm.io/gorm"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type RiskAssessmentRepo interface {
	List(ctx context.Context, tx *gorm.DB, order string, limit int) ([]*domain.RiskAssessment, error)
	Create(ctx context.Context, tx *gorm.DB, risk *domain.RiskAssessment) (*domain.RiskAssessment, error)
	// Schema is the shape a narrative call must return to become a RiskAssessment.
	Schema() map[string]any
}

type riskAssessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRiskAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) RiskAssessmentRepo {
	repoLog := baseLog.With("repo", "RiskAssessmentRepo")
	return &riskAssessmentRepo{db: db, log: repoLog}
}

func (r *riskAssessmentRepo) List(ctx context.Context, tx *gorm.DB, order string, limit int) ([]*domain.RiskAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listOrdered[domain.RiskAssessment](transaction.WithContext(ctx), order, limit)
}

func (r *riskAssessmentRepo) Create(ctx context.Context, tx *gorm.DB, risk *domain.RiskAssessment) (*domain.RiskAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if risk == nil {
		return nil, invalid("nil risk assessment")
	}
	if !domain.ValidRiskLevel(string(risk.RiskLevel)) {
		return nil, invalid("risk_level %q", risk.RiskLevel)
	}
	if risk.ContributingFactors == nil {
		risk.ContributingFactors = []string{}
	}
	if risk.Recommendations == nil {
		risk.Recommendations = []string{}
	}
	if err := transaction.WithContext(ctx).Create(risk).Error; err != nil {
		return nil, err
	}
	return risk, nil
}

func (r *riskAssessmentRepo) Schema() map[string]any {
	return domain.RiskAssessmentSchema()
}
