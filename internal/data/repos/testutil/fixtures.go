package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
)

func SeedSymptom(tb testing.TB, ctx context.Context, tx *gorm.DB, description string, severity domain.SeverityLevel, at time.Time) *domain.SymptomEntry {
	tb.Helper()
	e := &domain.SymptomEntry{
		Description:       description,
		SeverityLevel:     severity,
		TriageLevel:       domain.TriageSelfCare,
		ExtractedKeywords: []string{"cough"},
		CreatedDate:       at,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed symptom: %v", err)
	}
	return e
}

func SeedRisk(tb testing.TB, ctx context.Context, tx *gorm.DB, level domain.RiskLevel, at time.Time) *domain.RiskAssessment {
	tb.Helper()
	r := &domain.RiskAssessment{
		RiskLevel:       level,
		ConfidenceScore: 0.6,
		CreatedDate:     at,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed risk: %v", err)
	}
	return r
}

func SeedInhaler(tb testing.TB, ctx context.Context, tx *gorm.DB, score int, at time.Time) *domain.InhalerAssessment {
	tb.Helper()
	a := &domain.InhalerAssessment{
		TechniqueScore: score,
		StepAnalysis: []domain.StepAnalysis{
			{StepName: "Shake inhaler", Status: domain.StepCorrect, Feedback: "Good shaking."},
		},
		InhalerType: domain.InhalerMDI,
		CreatedDate: at,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed inhaler: %v", err)
	}
	return a
}
