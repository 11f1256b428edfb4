package repos

import (
	"gorm.io/gorm"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos/health"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type SymptomEntryRepo = health.SymptomEntryRepo
type RiskAssessmentRepo = health.RiskAssessmentRepo
type InhalerAssessmentRepo = health.InhalerAssessmentRepo

var ErrInvalidEntity = health.ErrInvalidEntity

// Repos bundles the entity store adapters.
type Repos struct {
	Symptoms SymptomEntryRepo
	Risks    RiskAssessmentRepo
	Inhaler  InhalerAssessmentRepo
}

func New(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Symptoms: health.NewSymptomEntryRepo(db, log),
		Risks:    health.NewRiskAssessmentRepo(db, log),
		Inhaler:  health.NewInhalerAssessmentRepo(db, log),
	}
}
