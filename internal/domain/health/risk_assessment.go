package health

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RiskAssessment is one 72-hour flare-up forecast. A recalculation always creates a new row.
type RiskAssessment struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	RiskLevel           RiskLevel                   `gorm:"column:risk_level;not null;index" json:"risk_level"`
	ConfidenceScore     float64                     `gorm:"column:confidence_score;not null;default:0" json:"confidence_score"`
	ContributingFactors datatypes.JSONSlice[string] `gorm:"column:contributing_factors;type:jsonb" json:"contributing_factors"`
	Recommendations     datatypes.JSONSlice[string] `gorm:"column:recommendations;type:jsonb" json:"recommendations"`
	CreatedDate         time.Time                   `gorm:"column:created_date;not null;autoCreateTime;index" json:"created_date"`
}

func (RiskAssessment) TableName() string { return "risk_assessment" }

func (r *RiskAssessment) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.ConfidenceScore = ClampConfidence(r.ConfidenceScore)
	return nil
}

func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
