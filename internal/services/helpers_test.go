package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos/testutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/narrative"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
)

var errCollaborator = errors.New("collaborator down")

// fixedNow is a Wednesday.
var fixedNow = time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// scriptedInvoker answers by shape name and records every request.
type scriptedInvoker struct {
	mu       sync.Mutex
	answers  map[string]map[string]any
	failures map[string]error
	requests []narrative.Request
}

func newScriptedInvoker() *scriptedInvoker {
	return &scriptedInvoker{answers: map[string]map[string]any{}, failures: map[string]error{}}
}

func (s *scriptedInvoker) Invoke(ctx context.Context, req narrative.Request) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if err := s.failures[req.Shape.Name]; err != nil {
		return nil, err
	}
	if out, ok := s.answers[req.Shape.Name]; ok {
		return out, nil
	}
	return nil, errors.New("no scripted answer for " + req.Shape.Name)
}

func (s *scriptedInvoker) calls(shape string) []narrative.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []narrative.Request
	for _, r := range s.requests {
		if r.Shape.Name == shape {
			out = append(out, r)
		}
	}
	return out
}

func (s *scriptedInvoker) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

type fakeUploader struct {
	key, contentType string
	body             []byte
	err              error
	calls            int
}

func (f *fakeUploader) Upload(_ context.Context, key, contentType string, r io.Reader) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	f.key, f.contentType, f.body = key, contentType, buf.Bytes()
	return "https://files.example.com/" + key, nil
}

type recordingEmitter struct {
	mu   sync.Mutex
	msgs []realtime.Message
}

func (r *recordingEmitter) Emit(_ context.Context, msg realtime.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingEmitter) events() []realtime.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]realtime.Event, 0, len(r.msgs))
	for _, m := range r.msgs {
		out = append(out, m.Event)
	}
	return out
}

type fixture struct {
	repos   repos.Repos
	invoker *scriptedInvoker
	env     EnvironmentService
	emitter *recordingEmitter
	notify  ActivityNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := testutil.Logger(t)
	inv := newScriptedInvoker()
	em := &recordingEmitter{}
	return &fixture{
		repos:   repos.New(testutil.DB(t), log),
		invoker: inv,
		env:     NewEnvironmentService(log, inv, "", clock, rand.New(rand.NewSource(1))),
		emitter: em,
		notify:  NewActivityNotifier(em, 0),
	}
}

func (f *fixture) seedSymptom(t *testing.T, desc string, sev domain.SeverityLevel, at time.Time) *domain.SymptomEntry {
	t.Helper()
	e := &domain.SymptomEntry{Description: desc, SeverityLevel: sev, TriageLevel: domain.TriageSelfCare, CreatedDate: at}
	out, err := f.repos.Symptoms.Create(context.Background(), nil, e)
	if err != nil {
		t.Fatalf("seed symptom: %v", err)
	}
	return out
}
