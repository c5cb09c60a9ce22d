package cli

import (
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/registry"
	"github.com/charmbracelet/huh"
)

// fieldPrompts maps raw value names to form titles and placeholders.
var fieldPrompts = map[string][2]string{
	"steps":          {"Steps", "15000"},
	"strokes":        {"Strokes", "720"},
	"duration_hours": {"Duration (hours)", "1"},
	"weight_kg":      {"Weight (kg)", "75"},
	"height_cm":      {"Height (cm)", "180"},
	"pool_length_m":  {"Pool Length (m)", "25"},
	"pool_laps":      {"Pool Laps", "40"},
}

// wholeNumberFields are counted rather than measured.
var wholeNumberFields = map[string]bool{
	"steps":     true,
	"strokes":   true,
	"pool_laps": true,
}

// activityTypeForm returns a themed form for picking the activity code.
func activityTypeForm(code *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.ActivityTypes))
	for _, c := range registry.Codes() {
		t := domain.ActivityType(c)
		options = append(options, huh.NewOption(t.Label()+" ("+c+")", c))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Activity").
				Options(options...).
				Value(code),
		),
	).WithTheme(fittrackHuhTheme()).WithShowHelp(false)
}

// valueInput returns a huh.Input for one raw value of a workout package.
func valueInput(field string, value *string) *huh.Input {
	title, placeholder := field, ""
	if prompt, ok := fieldPrompts[field]; ok {
		title, placeholder = prompt[0], prompt[1]
	}
	validate := validatePositiveNumber
	if wholeNumberFields[field] {
		validate = validatePositiveInt
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validate)
}

// workoutValuesForm returns a form with one input per value the entry
// expects. Answers land in values, which must have entry.Arity() slots.
func workoutValuesForm(entry registry.Entry, values []string) *huh.Form {
	inputs := make([]huh.Field, 0, len(entry.Fields))
	for i, field := range entry.Fields {
		inputs = append(inputs, valueInput(field, &values[i]))
	}
	return huh.NewForm(
		huh.NewGroup(inputs...).
			Title(strings.ToUpper(entry.Type.Label())),
	).WithTheme(fittrackHuhTheme()).WithShowHelp(false)
}
