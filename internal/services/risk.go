package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/observability"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/narrative"
)

const (
	RiskHistoryCap    = 7
	riskSymptomWindow = 5
	msgRiskFailed     = "Unable to calculate risk. Please try again."
	msgRiskLoadFailed = "Failed to load risk history."
)

// RiskResult is what one client currently sees on the risk page.
type RiskResult struct {
	Current *domain.RiskAssessment  `json:"current"`
	History []domain.RiskAssessment `json:"history"`
	// Stale is set when a newer request already replaced the displayed state.
	Stale bool `json:"stale"`
}

type RiskService interface {
	Calculate(ctx context.Context, clientKey string) (RiskResult, error)
	Load(ctx context.Context, clientKey string) (RiskResult, error)
	// Displayed returns the state last applied for clientKey.
	Displayed(clientKey string) RiskResult
}

// MaxRiskClients bounds how many client keys keep a displayed forecast in memory.
// Beyond it the least recently used idle client is forgotten; its next request
// starts from the stored history again.
const MaxRiskClients = 1024

// riskState is one client's displayed forecast. issued and applied are request
// sequence numbers: a finishing request only replaces the state if its number is
// above applied.
type riskState struct {
	issued   uint64
	applied  uint64
	inflight int
	lastUse  uint64
	current  *domain.RiskAssessment
	history  []domain.RiskAssessment
}

func (st *riskState) idle() bool { return st.inflight == 0 }

type riskService struct {
	log      *logger.Logger
	symptoms repos.SymptomEntryRepo
	risks    repos.RiskAssessmentRepo
	invoker  narrative.Invoker
	env      EnvironmentService
	notify   ActivityNotifier

	mu         sync.Mutex
	clients    map[string]*riskState
	tick       uint64
	maxClients int
}

func NewRiskService(log *logger.Logger, symptoms repos.SymptomEntryRepo, risks repos.RiskAssessmentRepo, invoker narrative.Invoker, env EnvironmentService, notify ActivityNotifier) RiskService {
	return &riskService{
		log:        log.With("service", "RiskService"),
		symptoms:   symptoms,
		risks:      risks,
		invoker:    invoker,
		env:        env,
		notify:     notifierOrNop(notify),
		clients:    map[string]*riskState{},
		maxClients: MaxRiskClients,
	}
}

// state returns the entry for clientKey, creating it when needed. Callers hold mu.
func (s *riskService) state(clientKey string) *riskState {
	s.tick++
	st, ok := s.clients[clientKey]
	if !ok {
		s.evictLocked()
		st = &riskState{}
		s.clients[clientKey] = st
	}
	st.lastUse = s.tick
	return st
}

// evictLocked drops least recently used idle clients until there is room for one
// more. Clients with a request in flight are kept so their fencing stays intact.
func (s *riskService) evictLocked() {
	for len(s.clients) >= s.maxClients {
		victim, oldest := "", uint64(0)
		for k, st := range s.clients {
			if st.idle() && (victim == "" || st.lastUse < oldest) {
				victim, oldest = k, st.lastUse
			}
		}
		if victim == "" {
			return
		}
		delete(s.clients, victim)
	}
}

func (s *riskService) nextSeq(clientKey string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(clientKey)
	st.issued++
	st.inflight++
	return st.issued
}

// apply runs update if seq is the newest finished request and reports the resulting state.
func (s *riskService) apply(clientKey string, seq uint64, update func(st *riskState)) RiskResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(clientKey)
	st.inflight--
	stale := seq <= st.applied
	if !stale {
		st.applied = seq
		update(st)
	}
	return snapshotLocked(st, stale)
}

// release finishes a request that will not apply, so its client can become idle.
func (s *riskService) release(clientKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.clients[clientKey]; ok && st.inflight > 0 {
		st.inflight--
	}
}

func snapshotLocked(st *riskState, stale bool) RiskResult {
	res := RiskResult{History: append([]domain.RiskAssessment{}, st.history...), Stale: stale}
	if st.current != nil {
		cur := *st.current
		res.Current = &cur
	}
	return res
}

// Displayed never creates state: an unknown client simply has nothing displayed.
func (s *riskService) Displayed(clientKey string) RiskResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.clients[clientKey]
	if !ok {
		return RiskResult{History: []domain.RiskAssessment{}}
	}
	return snapshotLocked(st, false)
}

// clientCount reports how many client keys hold state.
func (s *riskService) clientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

type riskPrediction struct {
	RiskLevel           string   `json:"risk_level"`
	ConfidenceScore     float64  `json:"confidence_score"`
	ContributingFactors []string `json:"contributing_factors"`
	Recommendations     []string `json:"recommendations"`
}

func riskPrompt(recent []*domain.SymptomEntry, env domain.EnvironmentalSnapshot) string {
	lines := lo.Map(recent, func(e *domain.SymptomEntry, _ int) string {
		return fmt.Sprintf("%s (Severity: %s)", e.Description, e.SeverityLevel)
	})
	return fmt.Sprintf(
		"Based on recent symptoms:\n%s\n\nAnd environmental data: Pollen %g, AQI %g, Weather: %s.\n\n"+
			"Predict the 72-hour asthma flare-up risk. Provide a JSON object with: risk_level (low/medium/high), "+
			"confidence_score (0.0-1.0), contributing_factors (array of strings), and recommendations (array of strings).",
		strings.Join(lines, "\n"), env.Pollen, env.AQI, env.Weather,
	)
}

func (s *riskService) Calculate(ctx context.Context, clientKey string) (RiskResult, error) {
	seq := s.nextSeq(clientKey)

	recent, err := s.symptoms.List(ctx, nil, "-created_date", riskSymptomWindow)
	if err != nil {
		return RiskResult{}, s.fail(clientKey, "recent symptoms", err)
	}
	env, err := s.env.Conditions(ctx)
	if err != nil {
		return RiskResult{}, s.fail(clientKey, "environment", err)
	}

	out, err := s.invoker.Invoke(ctx, narrative.Request{
		Prompt: riskPrompt(recent, env),
		Shape:  narrative.Shape{Name: narrative.ShapeRiskAssessment, Schema: s.risks.Schema()},
		Facts: map[string]any{
			narrative.FactSymptoms: lo.Map(recent, func(e *domain.SymptomEntry, _ int) string { return e.Description }),
			narrative.FactPollen:   env.Pollen,
			narrative.FactAQI:      env.AQI,
			narrative.FactWeather:  env.Weather,
		},
	})
	if err != nil {
		return RiskResult{}, s.fail(clientKey, "prediction", err)
	}
	var pred riskPrediction
	if err := decodeShape(out, &pred); err != nil {
		return RiskResult{}, s.fail(clientKey, "prediction decode", err)
	}
	if !domain.ValidRiskLevel(pred.RiskLevel) {
		return RiskResult{}, s.fail(clientKey, "prediction", fmt.Errorf("risk_level %q", pred.RiskLevel))
	}

	created, err := s.risks.Create(ctx, nil, &domain.RiskAssessment{
		RiskLevel:           domain.RiskLevel(pred.RiskLevel),
		ConfidenceScore:     pred.ConfidenceScore,
		ContributingFactors: lo.Ternary(pred.ContributingFactors == nil, []string{}, pred.ContributingFactors),
		Recommendations:     lo.Ternary(pred.Recommendations == nil, []string{}, pred.Recommendations),
	})
	if err != nil {
		return RiskResult{}, s.fail(clientKey, "store", err)
	}
	s.notify.RiskCreated(ctx, created)

	res := s.apply(clientKey, seq, func(st *riskState) {
		cur := *created
		st.current = &cur
		st.history = append([]domain.RiskAssessment{cur}, st.history...)
		if len(st.history) > RiskHistoryCap {
			st.history = st.history[:RiskHistoryCap]
		}
	})
	observability.Current().IncRiskResult(res.Stale)
	if res.Stale {
		s.log.Info("Risk result fenced out by a newer request", "client", clientKey, "seq", seq, "id", created.ID)
	}
	return res, nil
}

func (s *riskService) Load(ctx context.Context, clientKey string) (RiskResult, error) {
	seq := s.nextSeq(clientKey)

	rows, err := s.risks.List(ctx, nil, "-created_date", RiskHistoryCap)
	if err != nil {
		s.release(clientKey)
		s.log.Error("Loading risk history failed", "client", clientKey, "error", err)
		return RiskResult{}, apierr.Upstream("risk_load_failed", msgRiskLoadFailed, err)
	}
	if len(rows) == 0 {
		s.release(clientKey)
		return s.Calculate(ctx, clientKey)
	}
	history := lo.FromSlicePtr(rows)
	return s.apply(clientKey, seq, func(st *riskState) {
		cur := history[0]
		st.current = &cur
		st.history = history
	}), nil
}

func (s *riskService) fail(clientKey, step string, err error) error {
	s.release(clientKey)
	s.log.Error("Risk calculation failed", "client", clientKey, "step", step, "error", err)
	return apierr.Upstream("risk_calculation_failed", msgRiskFailed, err)
}
