package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos/testutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/narrative"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
)

// stallingSink blocks every publish until its context ends or five seconds pass.
type stallingSink struct {
	publishes atomic.Int32
	lastErr   atomic.Value
}

func (s *stallingSink) Publish(ctx context.Context, _ realtime.Message) error {
	s.publishes.Add(1)
	select {
	case <-ctx.Done():
		s.lastErr.Store(ctx.Err())
		return ctx.Err()
	case <-time.After(5 * time.Second):
		return nil
	}
}

func (s *stallingSink) Close() error { return nil }

func TestStalledSinkDoesNotHoldSymptomRequest(t *testing.T) {
	f := newFixture(t)
	f.invoker.answers[narrative.ShapeSymptomAnalysis] = map[string]any{
		"severity_level": "mild",
		"triage_level":   "self_care",
		"keywords":       []any{"sneezing"},
		"response":       "ok",
	}
	sink := &stallingSink{}
	notify := NewActivityNotifier(&SinkEmitter{Name: "stalled", Sink: sink, Log: testutil.Logger(t)}, 100*time.Millisecond)
	svc := NewSymptomService(testutil.Logger(t), f.repos.Symptoms, f.invoker, f.env, notify)

	start := time.Now()
	entry, err := svc.Analyze(context.Background(), "sneezing in the morning")
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Less(t, elapsed, 2*time.Second)
	assert.Equal(t, int32(1), sink.publishes.Load())
	stored, _ := sink.lastErr.Load().(error)
	assert.True(t, errors.Is(stored, context.DeadlineExceeded))
}

func TestNotifierDetachesFromRequestButKeepsDeadline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var (
		ctxErr      error
		hasDeadline bool
		events      []realtime.Event
	)
	n := NewActivityNotifier(emitterFunc(func(ctx context.Context, msg realtime.Message) {
		ctxErr = ctx.Err()
		_, hasDeadline = ctx.Deadline()
		events = append(events, msg.Event)
	}), 0)

	n.RiskCreated(ctx, &domain.RiskAssessment{RiskLevel: domain.RiskLow})
	n.SymptomCreated(ctx, nil)

	assert.Equal(t, []realtime.Event{realtime.EventRiskCreated}, events)
	assert.NoError(t, ctxErr)
	assert.True(t, hasDeadline)
}

type emitterFunc func(ctx context.Context, msg realtime.Message)

func (f emitterFunc) Emit(ctx context.Context, msg realtime.Message) { f(ctx, msg) }
