package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/objectstore"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/technique"
)

const (
	msgInvalidVideo       = "Please select a valid video file."
	msgInvalidInhaler     = "Please select a valid inhaler type."
	msgInhalerFailed      = "Failed to analyze the video. Please try again."
	msgAssessmentsFailed  = "Unable to load your technique history."
	DefaultAssessmentList = 3
)

type VideoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type InhalerService interface {
	AnalyzeVideo(ctx context.Context, v VideoUpload) (*domain.InhalerAssessment, error)
	AnalyzeChecklist(ctx context.Context, inhalerType string, steps map[string]bool) (*domain.InhalerAssessment, error)
	// Demo returns the canned medium-score analysis. It is never stored.
	Demo(ctx context.Context) (domain.InhalerAssessment, error)
	List(ctx context.Context, limit int) ([]domain.InhalerAssessment, error)
}

type InhalerServiceConfig struct {
	// ProcessingDelay simulates model latency before the mock result is returned.
	ProcessingDelay time.Duration
}

type inhalerService struct {
	log      *logger.Logger
	repo     repos.InhalerAssessmentRepo
	uploader objectstore.Uploader
	mock     *technique.MockEvaluator
	rule     technique.Evaluator
	notify   ActivityNotifier
	cfg      InhalerServiceConfig
	now      func() time.Time
}

func NewInhalerService(
	log *logger.Logger,
	repo repos.InhalerAssessmentRepo,
	uploader objectstore.Uploader,
	mock *technique.MockEvaluator,
	rule technique.Evaluator,
	notify ActivityNotifier,
	cfg InhalerServiceConfig,
) InhalerService {
	return &inhalerService{
		log:      log.With("service", "InhalerService"),
		repo:     repo,
		uploader: uploader,
		mock:     mock,
		rule:     rule,
		notify:   notifierOrNop(notify),
		cfg:      cfg,
		now:      time.Now,
	}
}

var inhalerTypeReplacer = strings.NewReplacer("-", "_", " ", "_")

// IsVideoContentType accepts any video/* media type.
func IsVideoContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return strings.HasPrefix(ct, "video/") && len(ct) > len("video/")
}

func (s *inhalerService) AnalyzeVideo(ctx context.Context, v VideoUpload) (*domain.InhalerAssessment, error) {
	if v.Body == nil || !IsVideoContentType(v.ContentType) {
		return nil, apierr.Validation("invalid_video", msgInvalidVideo)
	}

	url, err := s.uploader.Upload(ctx, objectstore.VideoKey(v.Filename, s.now()), v.ContentType, v.Body)
	if err != nil {
		return nil, s.fail("upload", err)
	}

	if s.cfg.ProcessingDelay > 0 {
		t := time.NewTimer(s.cfg.ProcessingDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, s.fail("processing", ctx.Err())
		case <-t.C:
		}
	}

	result, err := s.mock.Evaluate(ctx, technique.Input{VideoURL: url, InhalerType: domain.InhalerMDI})
	if err != nil {
		return nil, s.fail("evaluate", err)
	}
	return s.store(ctx, &result)
}

func (s *inhalerService) AnalyzeChecklist(ctx context.Context, inhalerType string, steps map[string]bool) (*domain.InhalerAssessment, error) {
	t := inhalerTypeReplacer.Replace(strings.ToLower(strings.TrimSpace(inhalerType)))
	if t != "" && !domain.ValidInhalerType(t) {
		return nil, apierr.Validation("invalid_inhaler_type", msgInvalidInhaler)
	}
	result, err := s.rule.Evaluate(ctx, technique.Input{InhalerType: domain.ParseInhalerType(t), Steps: steps})
	if err != nil {
		return nil, s.fail("evaluate", err)
	}
	return s.store(ctx, &result)
}

func (s *inhalerService) Demo(ctx context.Context) (domain.InhalerAssessment, error) {
	if err := ctx.Err(); err != nil {
		return domain.InhalerAssessment{}, err
	}
	a, ok := s.mock.Preset(technique.DemoPresetIndex)
	if !ok {
		return domain.InhalerAssessment{}, s.fail("demo", fmt.Errorf("demo preset %d missing", technique.DemoPresetIndex))
	}
	return a, nil
}

func (s *inhalerService) List(ctx context.Context, limit int) ([]domain.InhalerAssessment, error) {
	if limit <= 0 {
		limit = DefaultAssessmentList
	}
	rows, err := s.repo.List(ctx, nil, "-created_date", limit)
	if err != nil {
		s.log.Error("Listing inhaler assessments failed", "error", err)
		return nil, apierr.Upstream("inhaler_list_failed", msgAssessmentsFailed, err)
	}
	return lo.FromSlicePtr(rows), nil
}

func (s *inhalerService) store(ctx context.Context, a *domain.InhalerAssessment) (*domain.InhalerAssessment, error) {
	created, err := s.repo.Create(ctx, nil, a)
	if err != nil {
		return nil, s.fail("store", err)
	}
	s.log.Info("Inhaler assessment stored", "id", created.ID, "technique_score", created.TechniqueScore)
	s.notify.InhalerCreated(ctx, created)
	return created, nil
}

func (s *inhalerService) fail(step string, err error) error {
	s.log.Error("Inhaler analysis failed", "step", step, "error", err)
	return apierr.Upstream("inhaler_analysis_failed", msgInhalerFailed, err)
}
