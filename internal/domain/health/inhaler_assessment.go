package health

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StepAnalysis struct {
	StepName string     `json:"step_name" yaml:"step_name"`
	Status   StepStatus `json:"status" yaml:"status"`
	Feedback string     `json:"feedback" yaml:"feedback"`
}

type InhalerAssessment struct {
	ID               uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	TechniqueScore   int                               `gorm:"column:technique_score;not null" json:"technique_score"`
	StepAnalysis     datatypes.JSONSlice[StepAnalysis] `gorm:"column:step_analysis;type:jsonb" json:"step_analysis"`
	ImprovementAreas datatypes.JSONSlice[string]       `gorm:"column:improvement_areas;type:jsonb" json:"improvement_areas"`
	InhalerType      InhalerType                       `gorm:"column:inhaler_type;not null;default:'mdi'" json:"inhaler_type"`
	VideoURL         string                            `gorm:"column:video_url" json:"video_url,omitempty"`
	CreatedDate      time.Time                         `gorm:"column:created_date;not null;autoCreateTime;index" json:"created_date"`
}

func (InhalerAssessment) TableName() string { return "inhaler_assessment" }

func (a *InhalerAssessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.TechniqueScore = ClampScore(a.TechniqueScore)
	if a.InhalerType == "" {
		a.InhalerType = InhalerMDI
	}
	return nil
}

func (a InhalerAssessment) Timestamp() time.Time { return a.CreatedDate }

func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
