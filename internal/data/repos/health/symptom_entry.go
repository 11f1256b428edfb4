package health

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type SymptomEntryRepo interface {
	List(ctx context.Context, tx *gorm.DB, order string, limit int) ([]*domain.SymptomEntry, error)
	Create(ctx context.Context, tx *gorm.DB, entry *domain.SymptomEntry) (*domain.SymptomEntry, error)
	Schema() map[string]any
}

type symptomEntryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSymptomEntryRepo(db *gorm.DB, baseLog *logger.Logger) SymptomEntryRepo {
	repoLog := baseLog.With("repo", "SymptomEntryRepo")
	return &symptomEntryRepo{db: db, log: repoLog}
}

func (r *symptomEntryRepo) List(ctx context.Context, tx *gorm.DB, order string, limit int) ([]*domain.SymptomEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listOrdered[domain.SymptomEntry](transaction.WithContext(ctx), order, limit)
}

func (r *symptomEntryRepo) Create(ctx context.Context, tx *gorm.DB, entry *domain.SymptomEntry) (*domain.SymptomEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if entry == nil {
		return nil, invalid("nil symptom entry")
	}
	if strings.TrimSpace(entry.Description) == "" {
		return nil, invalid("symptom entry needs a description")
	}
	if !domain.ValidSeverity(string(entry.SeverityLevel)) {
		return nil, invalid("severity_level %q", entry.SeverityLevel)
	}
	if !domain.ValidTriage(string(entry.TriageLevel)) {
		return nil, invalid("triage_level %q", entry.TriageLevel)
	}
	if entry.ExtractedKeywords == nil {
		entry.ExtractedKeywords = []string{}
	}
	if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *symptomEntryRepo) Schema() map[string]any {
	return domain.SymptomAnalysisSchema()
}
