package workout

import (
	"errors"
	"math"
	"testing"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestRunning_ClosedForm(t *testing.T) {
	cases := [][]float64{
		{15000, 1, 75},
		{9000, 0.75, 62.5},
		{1, 0.01, 40},
		{42000, 3.5, 90},
	}

	for _, values := range cases {
		w, err := RunningFromValues(values)
		require.NoError(t, err)

		steps, duration, weight := values[0], values[1], values[2]
		distance := steps * 0.65 / 1000
		speed := distance / duration
		calories := (18*speed + 1.79) * weight / 1000 * duration * 60

		assert.InDelta(t, distance, w.DistanceKm(), tolerance)
		assert.InDelta(t, speed, w.MeanSpeedKmh(), tolerance)
		assert.InDelta(t, calories, w.CaloriesKcal(), tolerance)
	}
}

func TestRunning_Scenario(t *testing.T) {
	w, err := RunningFromValues([]float64{15000, 1, 75})
	require.NoError(t, err)

	assert.InDelta(t, 9.75, w.DistanceKm(), tolerance)
	assert.InDelta(t, 9.75, w.MeanSpeedKmh(), tolerance)
	assert.InDelta(t, 797.805, w.CaloriesKcal(), 1e-6)
	assert.Equal(t, domain.ActivityRunning, w.Type())
}

func TestWalking_ClosedForm(t *testing.T) {
	w, err := NewWalking(9000, 1, 75, 180)
	require.NoError(t, err)

	speed := 9000 * 0.65 / 1000 / 1.0
	want := (0.035*75 + (speed*0.278)*(speed*0.278)/(180.0/100)*0.029*75) * 1 * 60

	assert.InDelta(t, 5.85, w.DistanceKm(), tolerance)
	assert.InDelta(t, want, w.CaloriesKcal(), tolerance)
	assert.InDelta(t, 349.252, w.CaloriesKcal(), 1e-3)
	assert.Equal(t, 180.0, w.HeightCm())
}

func TestMeanSpeed_IsDistanceOverDuration(t *testing.T) {
	workouts := []Workout{}

	r, err := NewRunning(12345, 1.25, 70)
	require.NoError(t, err)
	workouts = append(workouts, r)

	w, err := NewWalking(8000, 2.5, 68, 172)
	require.NoError(t, err)
	workouts = append(workouts, w)

	for _, wk := range workouts {
		t.Run(string(wk.Type()), func(t *testing.T) {
			assert.InDelta(t, wk.DistanceKm()/wk.DurationHours(), wk.MeanSpeedKmh(), tolerance)
		})
	}
}

func TestSwimming_Scenario(t *testing.T) {
	w, err := SwimmingFromValues([]float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	assert.InDelta(t, 720*1.38/1000, w.DistanceKm(), tolerance)
	assert.InDelta(t, 1.0, w.MeanSpeedKmh(), tolerance)
	assert.InDelta(t, 336.0, w.CaloriesKcal(), tolerance)
}

func TestSwimming_SpeedIgnoresStrokeCount(t *testing.T) {
	few, err := NewSwimming(100, 0.5, 70, 50, 20)
	require.NoError(t, err)
	many, err := NewSwimming(5000, 0.5, 70, 50, 20)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, few.MeanSpeedKmh(), tolerance)
	assert.Equal(t, few.MeanSpeedKmh(), many.MeanSpeedKmh())
	assert.NotEqual(t, few.DistanceKm(), many.DistanceKm())
}

func TestReport_UsesVariantOverrides(t *testing.T) {
	w, err := NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)

	r := w.Report()
	assert.Equal(t, "Swimming", r.Label)
	assert.Equal(t, domain.ActivitySwimming, r.Type)
	assert.InDelta(t, 1.0, r.SpeedKmh, tolerance)
	assert.InDelta(t, 336.0, r.CaloriesKcal, tolerance)
	assert.Equal(t, 1.0, r.DurationHours)
}

func TestReport_Idempotent(t *testing.T) {
	w, err := NewWalking(9000, 1, 75, 180)
	require.NoError(t, err)

	first := w.Report()
	second := w.Report()
	assert.Equal(t, first, second)
	assert.Equal(t, "SportsWalking", first.Label)
}

func TestFromValues_Arity(t *testing.T) {
	tests := []struct {
		name     string
		build    func([]float64) (Workout, error)
		values   []float64
		activity domain.ActivityType
		want     int
	}{
		{"walking missing height", WalkingFromValues, []float64{9000, 1, 75}, domain.ActivityWalking, 4},
		{"running extra value", RunningFromValues, []float64{15000, 1, 75, 180}, domain.ActivityRunning, 3},
		{"swimming empty", SwimmingFromValues, nil, domain.ActivitySwimming, 5},
		{"swimming short", SwimmingFromValues, []float64{720, 1, 80, 25}, domain.ActivitySwimming, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.build(tt.values)
			require.Error(t, err)
			assert.Nil(t, w)
			assert.True(t, errors.Is(err, ErrArity))

			var arityErr *ArityError
			require.ErrorAs(t, err, &arityErr)
			assert.Equal(t, tt.activity, arityErr.Activity)
			assert.Equal(t, tt.want, arityErr.Want)
			assert.Equal(t, len(tt.values), arityErr.Got)
		})
	}
}

func TestFromValues_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		build  func([]float64) (Workout, error)
		values []float64
		field  string
	}{
		{"zero duration", RunningFromValues, []float64{15000, 0, 75}, "duration_hours"},
		{"negative weight", RunningFromValues, []float64{15000, 1, -75}, "weight_kg"},
		{"fractional steps", RunningFromValues, []float64{150.5, 1, 75}, "action"},
		{"zero steps", WalkingFromValues, []float64{0, 1, 75, 180}, "action"},
		{"zero height", WalkingFromValues, []float64{9000, 1, 75, 0}, "height_cm"},
		{"nan duration", WalkingFromValues, []float64{9000, math.NaN(), 75, 180}, "duration_hours"},
		{"infinite pool", SwimmingFromValues, []float64{720, 1, 80, math.Inf(1), 40}, "pool_length_m"},
		{"fractional laps", SwimmingFromValues, []float64{720, 1, 80, 25, 40.5}, "pool_laps"},
		{"steps beyond int32", RunningFromValues, []float64{math.MaxInt32 + 1, 1, 75}, "action"},
		{"laps beyond int32", SwimmingFromValues, []float64{720, 1, 80, 25, 1e10}, "pool_laps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.build(tt.values)
			require.Error(t, err)
			assert.Nil(t, w)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.NotErrorIs(t, err, ErrArity)

			var valueErr *ValueError
			require.ErrorAs(t, err, &valueErr)
			assert.Equal(t, tt.field, valueErr.Field)
		})
	}
}

func TestFromValues_CountAtInt32Limit(t *testing.T) {
	w, err := RunningFromValues([]float64{math.MaxInt32, 1, 75})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, w.(Running).Action())

	_, err = RunningFromValues([]float64{math.MaxInt32 + 1, 1, 75})
	var valueErr *ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "out of range", valueErr.Reason)
}

func TestFromValues_KeepsReadings(t *testing.T) {
	w, err := SwimmingFromValues([]float64{720, 1.5, 80, 25, 40})
	require.NoError(t, err)

	swim, ok := w.(Swimming)
	require.True(t, ok)
	assert.Equal(t, 720, swim.Action())
	assert.Equal(t, 1.5, swim.DurationHours())
	assert.Equal(t, 80.0, swim.WeightKg())
	assert.Equal(t, 25.0, swim.PoolLengthM())
	assert.Equal(t, 40, swim.PoolLaps())
}

func TestNewRunning_RejectsNegativeSteps(t *testing.T) {
	_, err := NewRunning(-1, 1, 75)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestArityError_Message(t *testing.T) {
	_, err := WalkingFromValues([]float64{9000, 1, 75})
	require.Error(t, err)
	assert.Equal(t, "wrong number of workout values: SportsWalking expects 4 values, got 3", err.Error())
}
