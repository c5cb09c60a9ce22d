package workout

import "github.com/alexanderramin/fittrack/internal/domain"

const (
	swimmingSpeedShift = 1.1
	swimmingMultiplier = 2
	swimmingArity      = 5
)

// Swimming is a pool swim measured in strokes. Speed comes from the pool
// geometry rather than the stroke count.
type Swimming struct {
	session
	poolLength float64
	poolLaps   int
}

// NewSwimming validates and builds a swimming workout.
func NewSwimming(strokes int, durationHours, weightKg, poolLengthM float64, poolLaps int) (Swimming, error) {
	s, err := newSession(strokes, durationHours, weightKg, strokeLengthM)
	if err != nil {
		return Swimming{}, err
	}
	if err := checkPositive("pool_length_m", poolLengthM); err != nil {
		return Swimming{}, err
	}
	if _, err := checkCount("pool_laps", float64(poolLaps)); err != nil {
		return Swimming{}, err
	}
	return Swimming{session: s, poolLength: poolLengthM, poolLaps: poolLaps}, nil
}

// SwimmingFromValues builds a swimming workout from a raw
// (strokes, duration, weight, pool length, laps) package.
func SwimmingFromValues(values []float64) (Workout, error) {
	if err := checkArity(domain.ActivitySwimming, swimmingArity, values); err != nil {
		return nil, err
	}
	strokes, err := checkCount("action", values[0])
	if err != nil {
		return nil, err
	}
	laps, err := checkCount("pool_laps", values[4])
	if err != nil {
		return nil, err
	}
	s, err := NewSwimming(strokes, values[1], values[2], values[3], laps)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (Swimming) Type() domain.ActivityType { return domain.ActivitySwimming }

// PoolLengthM returns the pool length in meters.
func (s Swimming) PoolLengthM() float64 { return s.poolLength }

// PoolLaps returns the number of pool lengths swum.
func (s Swimming) PoolLaps() int { return s.poolLaps }

// MeanSpeedKmh returns the average speed derived from the pool distance.
func (s Swimming) MeanSpeedKmh() float64 {
	return s.poolLength * float64(s.poolLaps) / metersInKm / s.duration
}

// CaloriesKcal returns the energy spent over the swim.
func (s Swimming) CaloriesKcal() float64 {
	return (s.MeanSpeedKmh() + swimmingSpeedShift) * swimmingMultiplier * s.weight * s.duration
}

func (s Swimming) Report() Report { return buildReport(s) }
