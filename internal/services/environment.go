package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/narrative"
)

const (
	DefaultLocation       = "New York, NY"
	DefaultHistoryDays    = 7
	MaxHistoryDays        = 30
	environmentFailureMsg = "Unable to load environmental data. Please try again."
)

type EnvironmentService interface {
	// Current asks the narrative collaborator, with internet context, for live
	// pollen (1-12), AQI, temperature (°F) and weather.
	Current(ctx context.Context) (domain.EnvironmentalSnapshot, error)
	// Conditions is the smaller {pollen, aqi, weather} reading used by the risk forecast.
	Conditions(ctx context.Context) (domain.EnvironmentalSnapshot, error)
	// Snapshot is the synthetic reading attached to new symptom entries.
	Snapshot(ctx context.Context) domain.EnvironmentalSnapshot
	// History returns synthetic readings for the last days days, newest first.
	History(ctx context.Context, days int) ([]domain.EnvironmentalSnapshot, error)
	Location() string
}

type environmentService struct {
	log      *logger.Logger
	invoker  narrative.Invoker
	location string
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewEnvironmentService(log *logger.Logger, invoker narrative.Invoker, location string, now func() time.Time, rng *rand.Rand) EnvironmentService {
	if strings.TrimSpace(location) == "" {
		location = DefaultLocation
	}
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &environmentService{
		log:      log.With("service", "EnvironmentService"),
		invoker:  invoker,
		location: location,
		now:      now,
		rng:      rng,
	}
}

func (s *environmentService) Location() string { return s.location }

type liveEnvironment struct {
	Pollen      float64 `json:"pollen"`
	AQI         float64 `json:"aqi"`
	Temperature float64 `json:"temperature"`
	Weather     string  `json:"weather"`
}

func (s *environmentService) Current(ctx context.Context) (domain.EnvironmentalSnapshot, error) {
	out, err := s.invoker.Invoke(ctx, narrative.Request{
		Prompt: fmt.Sprintf(
			"Provide current pollen index (scale of 1-12), AQI, temperature (F), and a brief weather summary for %s.",
			s.location,
		),
		Shape:              narrative.Shape{Name: narrative.ShapeTriggerEnvironment, Schema: domain.TriggerEnvironmentSchema()},
		UseInternetContext: true,
		Facts:              map[string]any{narrative.FactLocation: s.location},
	})
	if err != nil {
		return domain.EnvironmentalSnapshot{}, fmt.Errorf("current environment: %w", err)
	}
	var live liveEnvironment
	if err := decodeShape(out, &live); err != nil {
		return domain.EnvironmentalSnapshot{}, err
	}
	return domain.EnvironmentalSnapshot{
		Pollen:      live.Pollen,
		AQI:         live.AQI,
		Temperature: live.Temperature,
		Weather:     live.Weather,
		ObservedAt:  s.now(),
	}, nil
}

func (s *environmentService) Conditions(ctx context.Context) (domain.EnvironmentalSnapshot, error) {
	out, err := s.invoker.Invoke(ctx, narrative.Request{
		Prompt: fmt.Sprintf(
			"Provide current pollen index (scale of 1-12), AQI (1-500), and a brief weather summary for %s.",
			s.location,
		),
		Shape:              narrative.Shape{Name: narrative.ShapeEnvironment, Schema: domain.EnvironmentSchema()},
		UseInternetContext: true,
		Facts:              map[string]any{narrative.FactLocation: s.location},
	})
	if err != nil {
		return domain.EnvironmentalSnapshot{}, fmt.Errorf("environment conditions: %w", err)
	}
	var live liveEnvironment
	if err := decodeShape(out, &live); err != nil {
		return domain.EnvironmentalSnapshot{}, err
	}
	return domain.EnvironmentalSnapshot{
		Pollen:     live.Pollen,
		AQI:        live.AQI,
		Weather:    live.Weather,
		ObservedAt: s.now(),
	}, nil
}

func (s *environmentService) Snapshot(ctx context.Context) domain.EnvironmentalSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return narrative.DemoEnvironment(s.now(), s.rng)
}

// ClampHistoryDays maps a requested window onto 1..MaxHistoryDays; 0 means the default.
func ClampHistoryDays(days int) int {
	switch {
	case days == 0:
		return DefaultHistoryDays
	case days < 1:
		return 1
	case days > MaxHistoryDays:
		return MaxHistoryDays
	default:
		return days
	}
}

func (s *environmentService) History(ctx context.Context, days int) ([]domain.EnvironmentalSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	days = ClampHistoryDays(days)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.EnvironmentalSnapshot, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, narrative.DemoEnvironment(now.AddDate(0, 0, -i), s.rng))
	}
	return out, nil
}
