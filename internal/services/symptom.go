package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/narrative"
)

const (
	MaxSymptomRunes     = 500
	DefaultSymptomLimit = 14

	msgDescribeSymptoms = "Please describe your symptoms."
	msgSymptomsTooLong  = "Please keep your description under 500 characters."
	msgAnalyzeFailed    = "Unable to analyze symptoms. Please try again."
	msgSymptomsFailed   = "Unable to load your symptom history."
)

type SymptomService interface {
	Analyze(ctx context.Context, text string) (*domain.SymptomEntry, error)
	List(ctx context.Context, limit int) ([]domain.SymptomEntry, error)
}

type symptomService struct {
	log      *logger.Logger
	symptoms repos.SymptomEntryRepo
	invoker  narrative.Invoker
	env      EnvironmentService
	notify   ActivityNotifier
}

func NewSymptomService(log *logger.Logger, symptoms repos.SymptomEntryRepo, invoker narrative.Invoker, env EnvironmentService, notify ActivityNotifier) SymptomService {
	return &symptomService{
		log:      log.With("service", "SymptomService"),
		symptoms: symptoms,
		invoker:  invoker,
		env:      env,
		notify:   notifierOrNop(notify),
	}
}

type symptomAnalysis struct {
	SeverityLevel string   `json:"severity_level"`
	TriageLevel   string   `json:"triage_level"`
	Keywords      []string `json:"keywords"`
	Response      string   `json:"response"`
}

func symptomPrompt(text string) string {
	return fmt.Sprintf(`As a healthcare AI assistant, analyze these symptoms for educational purposes only: %q

Extract clinical keywords, classify severity, and provide educational guidance. Remember this is NOT diagnostic.

Respond with this exact structure:
- severity_level: mild/moderate/severe
- triage_level: self_care/primary_care/urgent
- keywords: list of clinical terms found
- response: patient-friendly educational response (include clear disclaimers)`, text)
}

// ValidateSymptomText trims text and enforces the length bounds.
func ValidateSymptomText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apierr.Validation("symptom_text_required", msgDescribeSymptoms)
	}
	if utf8.RuneCountInString(text) > MaxSymptomRunes {
		return "", apierr.Validation("symptom_text_too_long", msgSymptomsTooLong)
	}
	return text, nil
}

func (s *symptomService) Analyze(ctx context.Context, text string) (*domain.SymptomEntry, error) {
	text, err := ValidateSymptomText(text)
	if err != nil {
		return nil, err
	}

	out, err := s.invoker.Invoke(ctx, narrative.Request{
		Prompt: symptomPrompt(text),
		Shape:  narrative.Shape{Name: narrative.ShapeSymptomAnalysis, Schema: s.symptoms.Schema()},
		Facts:  map[string]any{narrative.FactSymptomText: text},
	})
	if err != nil {
		return nil, s.fail("narrative call failed", err)
	}
	var analysis symptomAnalysis
	if err := decodeShape(out, &analysis); err != nil {
		return nil, s.fail("narrative result unreadable", err)
	}
	if !domain.ValidSeverity(analysis.SeverityLevel) || !domain.ValidTriage(analysis.TriageLevel) {
		return nil, s.fail("narrative result out of range", fmt.Errorf(
			"severity_level=%q triage_level=%q", analysis.SeverityLevel, analysis.TriageLevel,
		))
	}

	entry := &domain.SymptomEntry{
		Description:       text,
		SeverityLevel:     domain.SeverityLevel(analysis.SeverityLevel),
		TriageLevel:       domain.TriageLevel(analysis.TriageLevel),
		ExtractedKeywords: lo.Ternary(analysis.Keywords == nil, []string{}, analysis.Keywords),
		AIResponse:        analysis.Response,
	}
	entry.SetEnvironment(s.env.Snapshot(ctx).Factors())

	created, err := s.symptoms.Create(ctx, nil, entry)
	if err != nil {
		return nil, s.fail("symptom entry not stored", err)
	}
	s.log.Info("Symptom entry stored", "id", created.ID, "severity_level", created.SeverityLevel)
	s.notify.SymptomCreated(ctx, created)
	return created, nil
}

func (s *symptomService) List(ctx context.Context, limit int) ([]domain.SymptomEntry, error) {
	if limit <= 0 {
		limit = DefaultSymptomLimit
	}
	rows, err := s.symptoms.List(ctx, nil, "-created_date", limit)
	if err != nil {
		s.log.Error("Listing symptom entries failed", "error", err)
		return nil, apierr.Upstream("symptom_list_failed", msgSymptomsFailed, err)
	}
	return lo.FromSlicePtr(rows), nil
}

func (s *symptomService) fail(msg string, err error) error {
	s.log.Error("Symptom analysis failed: "+msg, "error", err)
	return apierr.Upstream("symptom_analysis_failed", msgAnalyzeFailed, err)
}
