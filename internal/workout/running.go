package workout

import "github.com/alexanderramin/fittrack/internal/domain"

const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 1.79
	runningArity           = 3
)

// Running is a run measured in steps.
type Running struct {
	session
}

// NewRunning validates and builds a running workout.
func NewRunning(steps int, durationHours, weightKg float64) (Running, error) {
	s, err := newSession(steps, durationHours, weightKg, stepLengthM)
	if err != nil {
		return Running{}, err
	}
	return Running{session: s}, nil
}

// RunningFromValues builds a running workout from a raw
// (steps, duration, weight) package.
func RunningFromValues(values []float64) (Workout, error) {
	if err := checkArity(domain.ActivityRunning, runningArity, values); err != nil {
		return nil, err
	}
	steps, err := checkCount("action", values[0])
	if err != nil {
		return nil, err
	}
	r, err := NewRunning(steps, values[1], values[2])
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (Running) Type() domain.ActivityType { return domain.ActivityRunning }

// CaloriesKcal returns the energy spent over the run.
func (r Running) CaloriesKcal() float64 {
	return (runningSpeedMultiplier*r.MeanSpeedKmh() + runningSpeedShift) *
		r.weight / metersInKm * r.duration * minutesInHour
}

func (r Running) Report() Report { return buildReport(r) }
