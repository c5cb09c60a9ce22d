package workout

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/fittrack/internal/domain"
)

var (
	// ErrArity indicates a package carried the wrong number of values for
	// its activity.
	ErrArity = errors.New("wrong number of workout values")

	// ErrInvalidValue indicates a reading that is not a positive finite
	// number, or a count that is not a whole number.
	ErrInvalidValue = errors.New("invalid workout value")
)

// ArityError reports a value count mismatch for an activity.
type ArityError struct {
	Activity domain.ActivityType
	Want     int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d",
		ErrArity, e.Activity.Label(), e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// ValueError reports a single rejected reading.
type ValueError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s = %v (%s)", ErrInvalidValue, e.Field, e.Value, e.Reason)
}

func (e *ValueError) Unwrap() error { return ErrInvalidValue }

func checkArity(activity domain.ActivityType, want int, values []float64) error {
	if len(values) != want {
		return &ArityError{Activity: activity, Want: want, Got: len(values)}
	}
	return nil
}

func checkPositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValueError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &ValueError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}

func checkCount(field string, v float64) (int, error) {
	if err := checkPositive(field, v); err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, &ValueError{Field: field, Value: v, Reason: "must be a whole number"}
	}
	if v > math.MaxInt32 {
		return 0, &ValueError{Field: field, Value: v, Reason: "out of range"}
	}
	return int(v), nil
}
