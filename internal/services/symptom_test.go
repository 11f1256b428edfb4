package services

import (
	"context"
	"math/rand"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos/testutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/narrative"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
)

func newSymptomService(t *testing.T, f *fixture) SymptomService {
	return NewSymptomService(testutil.Logger(t), f.repos.Symptoms, f.invoker, f.env, f.notify)
}

func TestAnalyzeWheezingAllNight(t *testing.T) {
	f := newFixture(t)
	f.invoker.answers[narrative.ShapeSymptomAnalysis] = map[string]any{
		"severity_level": "moderate",
		"triage_level":   "primary_care",
		"keywords":       []any{"wheezing"},
		"response":       "Night-time wheezing can point to poorly controlled asthma.",
	}
	svc := newSymptomService(t, f)

	entry, err := svc.Analyze(context.Background(), "  wheezing all night  ")
	require.NoError(t, err)

	assert.Equal(t, "wheezing all night", entry.Description)
	assert.Equal(t, domain.SeverityModerate, entry.SeverityLevel)
	assert.Equal(t, domain.TriagePrimaryCare, entry.TriageLevel)
	assert.Equal(t, []string{"wheezing"}, []string(entry.ExtractedKeywords))
	assert.Equal(t, "Night-time wheezing can point to poorly controlled asthma.", entry.AIResponse)

	wantEnv := narrative.DemoEnvironment(fixedNow, rand.New(rand.NewSource(1))).Factors()
	require.NotNil(t, entry.Environment())
	assert.Equal(t, wantEnv, *entry.Environment())
	assert.Equal(t, "Rainy", entry.Environment().WeatherConditions)

	stored, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, entry.ID, stored[0].ID)
	assert.Equal(t, domain.SeverityModerate, stored[0].SeverityLevel)
	assert.Equal(t, wantEnv, *stored[0].Environment())

	calls := f.invoker.calls(narrative.ShapeSymptomAnalysis)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, `"wheezing all night"`)
	assert.False(t, calls[0].UseInternetContext)
	assert.Equal(t, "wheezing all night", calls[0].Facts[narrative.FactSymptomText])
	assert.Equal(t, domain.SymptomAnalysisSchema(), calls[0].Shape.Schema)

	assert.Equal(t, []realtime.Event{realtime.EventSymptomCreated}, f.emitter.events())
}

func TestAnalyzeRejectsBadInputWithoutCalling(t *testing.T) {
	cases := map[string]string{
		"empty":    "",
		"blank":    " \n\t ",
		"too long": strings.Repeat("é", MaxSymptomRunes+1),
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			svc := newSymptomService(t, f)

			_, err := svc.Analyze(context.Background(), text)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))
			assert.Zero(t, f.invoker.total())
		})
	}

	_, err := ValidateSymptomText(strings.Repeat("é", MaxSymptomRunes))
	assert.NoError(t, err)
	_, err = ValidateSymptomText("")
	assert.Equal(t, "Please describe your symptoms.", apierr.UserMessage(err))
}

func TestAnalyzeCollaboratorFailures(t *testing.T) {
	cases := map[string]func(f *fixture){
		"invoke error": func(f *fixture) { f.invoker.failures[narrative.ShapeSymptomAnalysis] = errCollaborator },
		"bad enum": func(f *fixture) {
			f.invoker.answers[narrative.ShapeSymptomAnalysis] = map[string]any{
				"severity_level": "critical", "triage_level": "urgent", "keywords": []any{}, "response": "x",
			}
		},
		"wrong types": func(f *fixture) {
			f.invoker.answers[narrative.ShapeSymptomAnalysis] = map[string]any{"severity_level": 3}
		},
	}
	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			setup(f)
			svc := newSymptomService(t, f)

			_, err := svc.Analyze(context.Background(), "itchy eyes")
			require.Error(t, err)
			assert.Equal(t, http.StatusBadGateway, apierr.StatusOf(err))
			assert.Equal(t, "Unable to analyze symptoms. Please try again.", apierr.UserMessage(err))

			stored, err := svc.List(context.Background(), 0)
			require.NoError(t, err)
			assert.Empty(t, stored)
			assert.Empty(t, f.emitter.events())
		})
	}
}

func TestAnalyzeWithDemoProvider(t *testing.T) {
	f := newFixture(t)
	svc := NewSymptomService(testutil.Logger(t), f.repos.Symptoms, narrative.NewDemoInvoker(clock, nil), f.env, nil)

	entry, err := svc.Analyze(context.Background(), "Severe chest pain and I cannot breathe")
	require.NoError(t, err)
	assert.Equal(t, domain.SeveritySevere, entry.SeverityLevel)
	assert.Equal(t, domain.TriageUrgent, entry.TriageLevel)
	assert.Contains(t, entry.AIResponse, "Seek immediate medical attention")
}
