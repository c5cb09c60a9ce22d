package testutil

import (
	"testing"

	"github.com/alexanderramin/fittrack/internal/registry"
	"github.com/alexanderramin/fittrack/internal/workout"
)

// Package is a raw sensor package as a caller would submit it.
type Package struct {
	Code   string
	Values []float64
}

// PackageOption adjusts a sample package.
type PackageOption func(*Package)

// WithDuration replaces the duration reading, which sits at index 1 for
// every activity.
func WithDuration(hours float64) PackageOption {
	return func(p *Package) {
		p.Values[1] = hours
	}
}

// WithWeight replaces the body weight reading.
func WithWeight(kg float64) PackageOption {
	return func(p *Package) {
		p.Values[2] = kg
	}
}

// WithoutLast drops the final reading to produce an arity mismatch.
func WithoutLast() PackageOption {
	return func(p *Package) {
		p.Values = p.Values[:len(p.Values)-1]
	}
}

func newPackage(code string, values []float64, opts ...PackageOption) Package {
	p := Package{Code: code, Values: append([]float64(nil), values...)}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewSwimPackage returns 720 strokes over an hour in a 25 m pool, 40 laps.
func NewSwimPackage(opts ...PackageOption) Package {
	return newPackage("SWM", []float64{720, 1, 80, 25, 40}, opts...)
}

// NewRunPackage returns 15000 steps over an hour at 75 kg.
func NewRunPackage(opts ...PackageOption) Package {
	return newPackage("RUN", []float64{15000, 1, 75}, opts...)
}

// NewWalkPackage returns 9000 steps over an hour at 75 kg and 180 cm.
func NewWalkPackage(opts ...PackageOption) Package {
	return newPackage("WLK", []float64{9000, 1, 75, 180}, opts...)
}

// SamplePackages returns one package per activity in display order.
func SamplePackages() []Package {
	return []Package{NewSwimPackage(), NewRunPackage(), NewWalkPackage()}
}

// MustBuild constructs the workout for p, failing the test on error.
func MustBuild(t *testing.T, p Package) workout.Workout {
	t.Helper()
	w, err := registry.Build(p.Code, p.Values)
	if err != nil {
		t.Fatalf("building %s package %v: %v", p.Code, p.Values, err)
	}
	return w
}
