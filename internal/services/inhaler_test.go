package services

import (
	"context"
	"math/rand"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos/testutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/domain"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/technique"
)

func newInhalerService(t *testing.T, f *fixture, up *fakeUploader, cfg InhalerServiceConfig) InhalerService {
	t.Helper()
	mock, err := technique.NewMockEvaluator(rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return NewInhalerService(testutil.Logger(t), f.repos.Inhaler, up, mock, technique.NewRuleEvaluator(), f.notify, cfg)
}

func storedAssessments(t *testing.T, svc InhalerService) []domain.InhalerAssessment {
	t.Helper()
	rows, err := svc.List(context.Background(), 50)
	require.NoError(t, err)
	return rows
}

func TestAnalyzeVideoRejectsNonVideo(t *testing.T) {
	f := newFixture(t)
	up := &fakeUploader{}
	svc := newInhalerService(t, f, up, InhalerServiceConfig{})

	for _, ct := range []string{"image/png", "", "video/", "application/octet-stream"} {
		_, err := svc.AnalyzeVideo(context.Background(), VideoUpload{Filename: "a.png", ContentType: ct, Body: strings.NewReader("x")})
		require.Error(t, err, ct)
		assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))
		assert.Equal(t, "Please select a valid video file.", apierr.UserMessage(err))
	}
	assert.Zero(t, up.calls)
	assert.Empty(t, storedAssessments(t, svc))
}

func TestAnalyzeVideoUploadsEvaluatesAndStores(t *testing.T) {
	f := newFixture(t)
	up := &fakeUploader{}
	svc := newInhalerService(t, f, up, InhalerServiceConfig{})

	got, err := svc.AnalyzeVideo(context.Background(), VideoUpload{
		Filename: "technique.MP4", ContentType: "video/mp4", Body: strings.NewReader("frames"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, up.calls)
	assert.Equal(t, "video/mp4", up.contentType)
	assert.Equal(t, "frames", string(up.body))
	assert.True(t, strings.HasPrefix(up.key, "inhaler_videos/"))
	assert.True(t, strings.HasSuffix(up.key, ".mp4"))

	assert.Equal(t, "https://files.example.com/"+up.key, got.VideoURL)
	assert.Contains(t, []int{92, 74, 58}, got.TechniqueScore)
	assert.NotEmpty(t, got.StepAnalysis)

	stored := storedAssessments(t, svc)
	require.Len(t, stored, 1)
	assert.Equal(t, got.ID, stored[0].ID)
	assert.Equal(t, got.VideoURL, stored[0].VideoURL)
	assert.Equal(t, []realtime.Event{realtime.EventInhalerCreated}, f.emitter.events())
}

func TestAnalyzeVideoUploadFailure(t *testing.T) {
	f := newFixture(t)
	svc := newInhalerService(t, f, &fakeUploader{err: errCollaborator}, InhalerServiceConfig{})

	_, err := svc.AnalyzeVideo(context.Background(), VideoUpload{ContentType: "video/webm", Body: strings.NewReader("x")})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apierr.StatusOf(err))
	assert.Equal(t, "Failed to analyze the video. Please try again.", apierr.UserMessage(err))
	assert.Empty(t, storedAssessments(t, svc))
}

func TestAnalyzeVideoDelayHonoursCancellation(t *testing.T) {
	f := newFixture(t)
	svc := newInhalerService(t, f, &fakeUploader{}, InhalerServiceConfig{ProcessingDelay: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := svc.AnalyzeVideo(ctx, VideoUpload{ContentType: "video/mp4", Body: strings.NewReader("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, storedAssessments(t, svc))
}

func TestAnalyzeChecklist(t *testing.T) {
	f := newFixture(t)
	svc := newInhalerService(t, f, &fakeUploader{}, InhalerServiceConfig{})

	all := map[string]bool{}
	for _, s := range technique.MDIChecklist {
		all[s.ID] = true
	}
	got, err := svc.AnalyzeChecklist(context.Background(), "soft-mist", all)
	require.NoError(t, err)
	assert.Equal(t, 100, got.TechniqueScore)
	assert.Equal(t, domain.InhalerSoftMist, got.InhalerType)

	got, err = svc.AnalyzeChecklist(context.Background(), "", map[string]bool{"shake_inhaler": true})
	require.NoError(t, err)
	assert.Equal(t, technique.ChecklistScore(1, len(technique.MDIChecklist)), got.TechniqueScore)
	assert.Equal(t, domain.InhalerMDI, got.InhalerType)

	_, err = svc.AnalyzeChecklist(context.Background(), "nebulizer", all)
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))

	assert.Len(t, storedAssessments(t, svc), 2)
}

func TestDemoIsNotStored(t *testing.T) {
	f := newFixture(t)
	svc := newInhalerService(t, f, &fakeUploader{}, InhalerServiceConfig{})

	demo, err := svc.Demo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 74, demo.TechniqueScore)
	assert.Empty(t, storedAssessments(t, svc))
	assert.Empty(t, f.emitter.events())
}
