// Package registry resolves activity type codes to workout constructors.
package registry

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/workout"
)

// ErrUnknownType indicates a type code with no registered constructor.
var ErrUnknownType = errors.New("unknown workout type")

// UnknownTypeError reports the code that failed to resolve.
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownType, e.Code)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// Constructor builds a workout from a raw sensor package.
type Constructor func(values []float64) (workout.Workout, error)

// Entry describes one registered activity.
type Entry struct {
	Type   domain.ActivityType
	Fields []string
	New    Constructor
}

// Arity returns the number of raw values the constructor expects.
func (e Entry) Arity() int { return len(e.Fields) }

var entries = map[domain.ActivityType]Entry{
	domain.ActivityRunning: {
		Type:   domain.ActivityRunning,
		Fields: []string{"steps", "duration_hours", "weight_kg"},
		New:    workout.RunningFromValues,
	},
	domain.ActivityWalking: {
		Type:   domain.ActivityWalking,
		Fields: []string{"steps", "duration_hours", "weight_kg", "height_cm"},
		New:    workout.WalkingFromValues,
	},
	domain.ActivitySwimming: {
		Type:   domain.ActivitySwimming,
		Fields: []string{"strokes", "duration_hours", "weight_kg", "pool_length_m", "pool_laps"},
		New:    workout.SwimmingFromValues,
	},
}

// Describe returns the registry entry for code.
func Describe(code string) (Entry, error) {
	entry, ok := entries[domain.ActivityType(code)]
	if !ok {
		return Entry{}, &UnknownTypeError{Code: code}
	}
	return entry, nil
}

// Lookup returns the constructor registered for code.
func Lookup(code string) (Constructor, error) {
	entry, err := Describe(code)
	if err != nil {
		return nil, err
	}
	return entry.New, nil
}

// Build resolves code and constructs a workout from values.
func Build(code string, values []float64) (workout.Workout, error) {
	construct, err := Lookup(code)
	if err != nil {
		return nil, err
	}
	return construct(values)
}

// Arity returns the number of raw values expected for code.
func Arity(code string) (int, error) {
	entry, err := Describe(code)
	if err != nil {
		return 0, err
	}
	return entry.Arity(), nil
}

// Codes lists every registered code in display order.
func Codes() []string {
	codes := make([]string, 0, len(domain.ActivityTypes))
	for _, t := range domain.ActivityTypes {
		if _, ok := entries[t]; ok {
			codes = append(codes, string(t))
		}
	}
	return codes
}

// Entries returns every registry entry in display order.
func Entries() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, code := range Codes() {
		out = append(out, entries[domain.ActivityType(code)])
	}
	return out
}
