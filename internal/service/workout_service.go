package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fittrack/internal/registry"
	"github.com/alexanderramin/fittrack/internal/summary"
	"github.com/alexanderramin/fittrack/internal/workout"
)

// WorkoutService turns raw sensor packages into training reports.
type WorkoutService interface {
	// Report resolves code, builds the workout and returns its computed report.
	Report(ctx context.Context, code string, values []float64) (workout.Report, error)
	// ProcessWorkout returns the formatted summary line for a package.
	ProcessWorkout(ctx context.Context, code string, values []float64) (string, error)
}

type workoutService struct {
	observer UseCaseObserver
}

func NewWorkoutService(observers ...UseCaseObserver) WorkoutService {
	return &workoutService{observer: useCaseObserverOrNoop(observers)}
}

func (s *workoutService) Report(ctx context.Context, code string, values []float64) (report workout.Report, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"activity": code,
		"values":   len(values),
	}
	defer func() {
		if err == nil {
			fields["calories_kcal"] = report.CaloriesKcal
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "report-workout",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var w workout.Workout
	w, err = registry.Build(code, values)
	if err != nil {
		return workout.Report{}, fmt.Errorf("reading %s package: %w", code, err)
	}
	return w.Report(), nil
}

func (s *workoutService) ProcessWorkout(ctx context.Context, code string, values []float64) (string, error) {
	report, err := s.Report(ctx, code, values)
	if err != nil {
		return "", err
	}
	return summary.Format(report), nil
}
