package services

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/insights"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

const (
	dashboardSymptoms    = 5
	dashboardAssessments = 3
	triggerSymptoms      = 14

	msgDashboardFailed = "Unable to load your dashboard. Please try again."
)

type DashboardData struct {
	Symptoms    []domain.SymptomEntry
	Risk        *domain.RiskAssessment
	Assessments []domain.InhalerAssessment
	Environment domain.EnvironmentalSnapshot
}

type TriggersData struct {
	Symptoms    []domain.SymptomEntry
	Environment domain.EnvironmentalSnapshot
}

type DashboardService interface {
	Dashboard(ctx context.Context) (DashboardData, error)
	Triggers(ctx context.Context) (TriggersData, error)
	Activity(ctx context.Context, limit int) ([]insights.ActivityItem, error)
}

type dashboardService struct {
	log      *logger.Logger
	symptoms repos.SymptomEntryRepo
	risks    repos.RiskAssessmentRepo
	inhaler  repos.InhalerAssessmentRepo
	env      EnvironmentService
}

func NewDashboardService(log *logger.Logger, r repos.Repos, env EnvironmentService) DashboardService {
	return &dashboardService{
		log:      log.With("service", "DashboardService"),
		symptoms: r.Symptoms,
		risks:    r.Risks,
		inhaler:  r.Inhaler,
		env:      env,
	}
}

func (s *dashboardService) recent(ctx context.Context, symptomLimit, assessmentLimit int) ([]*domain.SymptomEntry, []*domain.InhalerAssessment, error) {
	var (
		symptoms    []*domain.SymptomEntry
		assessments []*domain.InhalerAssessment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		symptoms, err = s.symptoms.List(gctx, nil, "-created_date", symptomLimit)
		return err
	})
	g.Go(func() error {
		var err error
		assessments, err = s.inhaler.List(gctx, nil, "-created_date", assessmentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return symptoms, assessments, nil
}

func (s *dashboardService) Dashboard(ctx context.Context) (DashboardData, error) {
	var (
		symptoms    []*domain.SymptomEntry
		assessments []*domain.InhalerAssessment
		risks       []*domain.RiskAssessment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		symptoms, assessments, err = s.recent(gctx, dashboardSymptoms, dashboardAssessments)
		return err
	})
	g.Go(func() error {
		var err error
		risks, err = s.risks.List(gctx, nil, "-created_date", 1)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Loading dashboard failed", "error", err)
		return DashboardData{}, apierr.Upstream("dashboard_failed", msgDashboardFailed, err)
	}

	data := DashboardData{
		Symptoms:    lo.FromSlicePtr(symptoms),
		Assessments: lo.FromSlicePtr(assessments),
		Environment: s.env.Snapshot(ctx),
	}
	if len(risks) > 0 && risks[0] != nil {
		r := *risks[0]
		data.Risk = &r
	}
	return data, nil
}

func (s *dashboardService) Triggers(ctx context.Context) (TriggersData, error) {
	var (
		symptoms []*domain.SymptomEntry
		env      domain.EnvironmentalSnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		symptoms, err = s.symptoms.List(gctx, nil, "-created_date", triggerSymptoms)
		return err
	})
	g.Go(func() error {
		var err error
		env, err = s.env.Current(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Loading triggers failed", "error", err)
		return TriggersData{}, apierr.Upstream("triggers_failed", environmentFailureMsg, err)
	}
	return TriggersData{Symptoms: lo.FromSlicePtr(symptoms), Environment: env}, nil
}

func (s *dashboardService) Activity(ctx context.Context, limit int) ([]insights.ActivityItem, error) {
	if limit <= 0 {
		limit = insights.RecentActivityLimit
	}
	symptoms, assessments, err := s.recent(ctx, limit, limit)
	if err != nil {
		s.log.Error("Loading activity failed", "error", err)
		return nil, apierr.Upstream("activity_failed", msgDashboardFailed, err)
	}
	return insights.MergeActivity(lo.FromSlicePtr(symptoms), lo.FromSlicePtr(assessments), limit), nil
}
