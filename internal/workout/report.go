package workout

import "github.com/alexanderramin/fittrack/internal/domain"

// Report is the computed summary of a workout.
type Report struct {
	Type          domain.ActivityType
	Label         string
	DurationHours float64
	DistanceKm    float64
	SpeedKmh      float64
	CaloriesKcal  float64
}
