package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/observability"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

// Shape names understood by every provider.
const (
	ShapeSymptomAnalysis    = "symptom_analysis"
	ShapeEnvironment        = "environment_snapshot"
	ShapeRiskAssessment     = "risk_assessment"
	ShapeTriggerEnvironment = "trigger_environment"
)

// Fact keys carried next to the prompt. Prompt-driven providers ignore them; the
// demo provider computes its answer from them.
const (
	FactSymptomText = "symptom_text"
	FactSymptoms    = "symptoms"
	FactPollen      = "pollen"
	FactAQI         = "aqi"
	FactWeather     = "weather"
	FactLocation    = "location"
)

var ErrEmptyResponse = errors.New("narrative provider returned an empty object")

type Shape struct {
	Name   string
	Schema map[string]any
}

type Request struct {
	Prompt             string
	Shape              Shape
	UseInternetContext bool
	Facts              map[string]any
}

// Invoker is the narrative-analysis collaborator: free text in, schema-shaped object out.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (map[string]any, error)
}

type InvokerFunc func(ctx context.Context, req Request) (map[string]any, error)

func (f InvokerFunc) Invoke(ctx context.Context, req Request) (map[string]any, error) {
	return f(ctx, req)
}

func (r Request) validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return fmt.Errorf("narrative request: prompt required")
	}
	if r.Shape.Name == "" || r.Shape.Schema == nil {
		return fmt.Errorf("narrative request: shape name and schema required")
	}
	return nil
}

type instrumented struct {
	name  string
	inner Invoker
	log   *logger.Logger
}

// Instrument wraps an invoker with a trace span and a timing log line.
func Instrument(name string, inner Invoker, log *logger.Logger) Invoker {
	return &instrumented{name: name, inner: inner, log: log.With("service", "NarrativeInvoker", "provider", name)}
}

func (i *instrumented) Invoke(ctx context.Context, req Request) (map[string]any, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	ctx, span := otel.Tracer("aerosense/narrative").Start(ctx, "narrative.invoke")
	defer span.End()
	span.SetAttributes(
		attribute.String("narrative.provider", i.name),
		attribute.String("narrative.shape", req.Shape.Name),
		attribute.Bool("narrative.internet_context", req.UseInternetContext),
	)

	start := time.Now()
	out, err := i.inner.Invoke(ctx, req)
	if err == nil && len(out) == 0 {
		err = ErrEmptyResponse
	}
	observability.Current().ObserveNarrative(i.name, req.Shape.Name, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invoke failed")
		i.log.Warn("Narrative call failed",
			"shape", req.Shape.Name,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	i.log.Debug("Narrative call finished", "shape", req.Shape.Name, "elapsed_ms", time.Since(start).Milliseconds())
	return out, nil
}
