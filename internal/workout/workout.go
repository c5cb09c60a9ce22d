// Package workout turns raw sensor packages into distance, mean speed and
// calorie figures for each supported activity.
package workout

import "github.com/alexanderramin/fittrack/internal/domain"

const (
	stepLengthM   = 0.65
	strokeLengthM = 1.38
	metersInKm    = 1000
	minutesInHour = 60
)

// Workout is a single recorded training session. Implementations are
// immutable once constructed.
type Workout interface {
	Type() domain.ActivityType
	DurationHours() float64
	DistanceKm() float64
	MeanSpeedKmh() float64
	CaloriesKcal() float64
	Report() Report
}

// session carries the readings every activity shares. It has no calorie
// formula of its own, so it never satisfies Workout by itself.
type session struct {
	action   int
	duration float64
	weight   float64
	stride   float64
}

// DistanceKm returns the distance covered by all recorded actions.
func (s session) DistanceKm() float64 {
	return float64(s.action) * s.stride / metersInKm
}

// MeanSpeedKmh returns the average speed over the whole session.
func (s session) MeanSpeedKmh() float64 {
	return s.DistanceKm() / s.duration
}

// Action returns the recorded step or stroke count.
func (s session) Action() int { return s.action }

// DurationHours returns the session length in hours.
func (s session) DurationHours() float64 { return s.duration }

// WeightKg returns the athlete's body weight.
func (s session) WeightKg() float64 { return s.weight }

// newSession validates the readings shared by every activity.
func newSession(action int, duration, weight, stride float64) (session, error) {
	if _, err := checkCount("action", float64(action)); err != nil {
		return session{}, err
	}
	if err := checkPositive("duration_hours", duration); err != nil {
		return session{}, err
	}
	if err := checkPositive("weight_kg", weight); err != nil {
		return session{}, err
	}
	return session{action: action, duration: duration, weight: weight, stride: stride}, nil
}

// buildReport snapshots w through its own method set so variant overrides
// of MeanSpeedKmh are honored.
func buildReport(w Workout) Report {
	return Report{
		Type:          w.Type(),
		Label:         w.Type().Label(),
		DurationHours: w.DurationHours(),
		DistanceKm:    w.DistanceKm(),
		SpeedKmh:      w.MeanSpeedKmh(),
		CaloriesKcal:  w.CaloriesKcal(),
	}
}
