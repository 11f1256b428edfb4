package health

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnvironmentalFactors is the snapshot attached to a symptom entry when it is logged.
type EnvironmentalFactors struct {
	PollenCount       float64 `json:"pollen_count"`
	AirQualityIndex   float64 `json:"air_quality_index"`
	WeatherConditions string  `json:"weather_conditions"`
	Temperature       float64 `json:"temperature"`
	Humidity          float64 `json:"humidity"`
}

type SymptomEntry struct {
	ID                   uuid.UUID                                 `gorm:"type:uuid;primaryKey" json:"id"`
	Description          string                                    `gorm:"column:description;type:text;not null" json:"description"`
	SeverityLevel        SeverityLevel                             `gorm:"column:severity_level;not null;index" json:"severity_level"`
	TriageLevel          TriageLevel                               `gorm:"column:triage_level;not null" json:"triage_level"`
	ExtractedKeywords    datatypes.JSONSlice[string]               `gorm:"column:extracted_keywords;type:jsonb" json:"extracted_keywords"`
	AIResponse           string                                    `gorm:"column:ai_response;type:text" json:"ai_response"`
	EnvironmentalFactors *datatypes.JSONType[EnvironmentalFactors] `gorm:"column:environmental_factors;type:jsonb" json:"environmental_factors,omitempty"`
	CreatedDate          time.Time                                 `gorm:"column:created_date;not null;autoCreateTime;index" json:"created_date"`
}

func (SymptomEntry) TableName() string { return "symptom_entry" }

func (s *SymptomEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Environment returns the attached snapshot, or nil when none was recorded.
func (s SymptomEntry) Environment() *EnvironmentalFactors {
	if s.EnvironmentalFactors == nil {
		return nil
	}
	env := s.EnvironmentalFactors.Data()
	return &env
}

func (s *SymptomEntry) SetEnvironment(env EnvironmentalFactors) {
	v := datatypes.NewJSONType(env)
	s.EnvironmentalFactors = &v
}

func (s SymptomEntry) Timestamp() time.Time { return s.CreatedDate }
