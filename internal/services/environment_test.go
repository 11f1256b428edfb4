package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/data/repos/testutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/narrative"
)

func TestClampHistoryDays(t *testing.T) {
	cases := map[int]int{0: 7, -3: 1, 1: 1, 14: 14, 30: 30, 31: 30, 400: 30}
	for in, want := range cases {
		assert.Equal(t, want, ClampHistoryDays(in), "days=%d", in)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	f := newFixture(t)

	hist, err := f.env.History(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.True(t, hist[0].ObservedAt.Equal(fixedNow))
	assert.True(t, hist[1].ObservedAt.Equal(fixedNow.AddDate(0, 0, -1)))
	// Wednesday, Tuesday, Monday.
	assert.Equal(t, []string{"Rainy", "Partly Cloudy", "Clear"}, []string{hist[0].Weather, hist[1].Weather, hist[2].Weather})
	for _, h := range hist {
		assert.GreaterOrEqual(t, h.Temperature, 15.0)
		assert.LessOrEqual(t, h.Temperature, 28.0)
		assert.GreaterOrEqual(t, h.Humidity, 40.0)
		assert.LessOrEqual(t, h.Humidity, 80.0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.env.History(ctx, 3)
	assert.Error(t, err)
}

func TestCurrentAndConditionsDecode(t *testing.T) {
	f := newFixture(t)
	f.invoker.answers[narrative.ShapeTriggerEnvironment] = map[string]any{
		"pollen": 4.0, "aqi": 51.0, "temperature": 80.0, "weather": "Clear",
	}
	f.invoker.answers[narrative.ShapeEnvironment] = map[string]any{"pollen": 2.0, "aqi": 30.0, "weather": "Dry"}

	cur, err := f.env.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 80.0, cur.Temperature)
	assert.True(t, cur.ObservedAt.Equal(fixedNow))

	cond, err := f.env.Conditions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dry", cond.Weather)
	assert.Zero(t, cond.Temperature)

	f.invoker.failures[narrative.ShapeEnvironment] = errCollaborator
	_, err = f.env.Conditions(context.Background())
	assert.ErrorIs(t, err, errCollaborator)
}

func TestLocationDefaultsAndOverride(t *testing.T) {
	log := testutil.Logger(t)
	assert.Equal(t, DefaultLocation, NewEnvironmentService(log, nil, " ", nil, nil).Location())
	assert.Equal(t, "Chicago, IL", NewEnvironmentService(log, nil, "Chicago, IL", nil, nil).Location())
}
