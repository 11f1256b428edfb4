package services

import (
	"context"
	"time"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/observability"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime/bus"
)

type Emitter interface {
	Emit(ctx context.Context, msg realtime.Message)
}

type HubEmitter struct{ Hub *realtime.Hub }

func (e *HubEmitter) Emit(ctx context.Context, msg realtime.Message) {
	e.Hub.Broadcast(msg)
	observability.Current().IncEvent(string(msg.Event), "hub", nil)
}

// SinkEmitter publishes to a bus or sink. Publish failures are logged and dropped.
type SinkEmitter struct {
	Name string
	Sink bus.Sink
	Log  *logger.Logger
}

func (e *SinkEmitter) Emit(ctx context.Context, msg realtime.Message) {
	err := e.Sink.Publish(ctx, msg)
	observability.Current().IncEvent(string(msg.Event), e.Name, err)
	if err != nil && e.Log != nil {
		e.Log.Warn("Event publish failed", "sink", e.Name, "event", msg.Event, "error", err)
	}
}

type MultiEmitter []Emitter

func (m MultiEmitter) Emit(ctx context.Context, msg realtime.Message) {
	for _, e := range m {
		e.Emit(ctx, msg)
	}
}

// ActivityNotifier announces newly stored entities.
type ActivityNotifier interface {
	SymptomCreated(ctx context.Context, entry *domain.SymptomEntry)
	RiskCreated(ctx context.Context, risk *domain.RiskAssessment)
	InhalerCreated(ctx context.Context, a *domain.InhalerAssessment)
}

// DefaultEventTimeout bounds how long a stored entity's request waits on its event sinks.
const DefaultEventTimeout = 2 * time.Second

type activityNotifier struct {
	emit    Emitter
	now     func() time.Time
	timeout time.Duration
}

// NewActivityNotifier publishes through emit. timeout <= 0 uses DefaultEventTimeout.
func NewActivityNotifier(emit Emitter, timeout time.Duration) ActivityNotifier {
	if timeout <= 0 {
		timeout = DefaultEventTimeout
	}
	return &activityNotifier{emit: emit, now: time.Now, timeout: timeout}
}

func (n *activityNotifier) send(ctx context.Context, event realtime.Event, data any) {
	if n == nil || n.emit == nil {
		return
	}
	// Detached from request cancellation, but a stalled sink only costs timeout.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()
	n.emit.Emit(ctx, realtime.Message{
		Channel: realtime.ActivityChannel,
		Event:   event,
		Data:    data,
		SentAt:  n.now().UTC(),
	})
}

func (n *activityNotifier) SymptomCreated(ctx context.Context, entry *domain.SymptomEntry) {
	if entry == nil {
		return
	}
	n.send(ctx, realtime.EventSymptomCreated, map[string]any{
		"id":             entry.ID,
		"severity_level": entry.SeverityLevel,
		"triage_level":   entry.TriageLevel,
		"created_date":   entry.CreatedDate,
	})
}

func (n *activityNotifier) RiskCreated(ctx context.Context, risk *domain.RiskAssessment) {
	if risk == nil {
		return
	}
	n.send(ctx, realtime.EventRiskCreated, map[string]any{
		"id":               risk.ID,
		"risk_level":       risk.RiskLevel,
		"confidence_score": risk.ConfidenceScore,
		"created_date":     risk.CreatedDate,
	})
}

func (n *activityNotifier) InhalerCreated(ctx context.Context, a *domain.InhalerAssessment) {
	if a == nil {
		return
	}
	n.send(ctx, realtime.EventInhalerCreated, map[string]any{
		"id":              a.ID,
		"technique_score": a.TechniqueScore,
		"inhaler_type":    a.InhalerType,
		"created_date":    a.CreatedDate,
	})
}

type nopNotifier struct{}

func (nopNotifier) SymptomCreated(context.Context, *domain.SymptomEntry)      {}
func (nopNotifier) RiskCreated(context.Context, *domain.RiskAssessment)       {}
func (nopNotifier) InhalerCreated(context.Context, *domain.InhalerAssessment) {}

func notifierOrNop(n ActivityNotifier) ActivityNotifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
