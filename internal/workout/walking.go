package workout

import (
	"math"

	"github.com/alexanderramin/fittrack/internal/domain"
)

const (
	walkingWeightMultiplier = 0.035
	walkingHeightMultiplier = 0.029
	kmhInMs                 = 0.278
	cmInM                   = 100
	walkingArity            = 4
)

// Walking is a sports walk measured in steps. Height feeds the calorie
// formula.
type Walking struct {
	session
	height float64
}

// NewWalking validates and builds a walking workout.
func NewWalking(steps int, durationHours, weightKg, heightCm float64) (Walking, error) {
	s, err := newSession(steps, durationHours, weightKg, stepLengthM)
	if err != nil {
		return Walking{}, err
	}
	if err := checkPositive("height_cm", heightCm); err != nil {
		return Walking{}, err
	}
	return Walking{session: s, height: heightCm}, nil
}

// WalkingFromValues builds a walking workout from a raw
// (steps, duration, weight, height) package.
func WalkingFromValues(values []float64) (Workout, error) {
	if err := checkArity(domain.ActivityWalking, walkingArity, values); err != nil {
		return nil, err
	}
	steps, err := checkCount("action", values[0])
	if err != nil {
		return nil, err
	}
	w, err := NewWalking(steps, values[1], values[2], values[3])
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (Walking) Type() domain.ActivityType { return domain.ActivityWalking }

// HeightCm returns the walker's height.
func (w Walking) HeightCm() float64 { return w.height }

// CaloriesKcal returns the energy spent over the walk.
func (w Walking) CaloriesKcal() float64 {
	speedMs := w.MeanSpeedKmh() * kmhInMs
	return (walkingWeightMultiplier*w.weight +
		math.Pow(speedMs, 2)/(w.height/cmInM)*walkingHeightMultiplier*w.weight) *
		w.duration * minutesInHour
}

func (w Walking) Report() Report { return buildReport(w) }
