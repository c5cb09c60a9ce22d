// Package summary renders workout reports as the one-line training summary.
package summary

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/fittrack/internal/workout"
)

// Format renders r as a single summary line. Every figure is printed in
// fixed-point notation with three decimals.
func Format(r workout.Report) string {
	var b strings.Builder
	b.WriteString("Training type: ")
	b.WriteString(r.Label)
	b.WriteString("; Duration: ")
	b.WriteString(Fixed(r.DurationHours))
	b.WriteString(" h; Distance: ")
	b.WriteString(Fixed(r.DistanceKm))
	b.WriteString(" km; Avg speed: ")
	b.WriteString(Fixed(r.SpeedKmh))
	b.WriteString(" km/h; Calories burned: ")
	b.WriteString(Fixed(r.CaloriesKcal))
	b.WriteString(".")
	return b.String()
}

// Fixed formats v with exactly three decimals and no exponent.
func Fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
