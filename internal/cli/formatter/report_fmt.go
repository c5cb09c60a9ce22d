package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/fittrack/internal/registry"
	"github.com/alexanderramin/fittrack/internal/summary"
	"github.com/alexanderramin/fittrack/internal/workout"
)

const shareBarWidth = 10

// FormatReports renders reports as a table followed by a calorie total.
// The SHARE column shows each workout's part of that total.
func FormatReports(reports []workout.Report) string {
	if len(reports) == 0 {
		return Dim("No workouts.") + "\n"
	}

	var total float64
	for _, r := range reports {
		total += r.CaloriesKcal
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		share := 0.0
		if total > 0 {
			share = r.CaloriesKcal / total
		}
		rows = append(rows, []string{
			ActivityStyle(r.Type).Render(r.Label),
			FormatHours(r.DurationHours),
			summary.Fixed(r.DistanceKm),
			summary.Fixed(r.SpeedKmh),
			summary.Fixed(r.CaloriesKcal),
			RenderShare(share, shareBarWidth),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Workouts"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(
		[]string{"TYPE", "DURATION", "DISTANCE KM", "SPEED KM/H", "KCAL", "SHARE"},
		rows, 1, 2, 3, 4,
	))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d workouts, %s kcal total", len(reports), summary.Fixed(total))))
	b.WriteString("\n")
	return b.String()
}

// FormatActivityTypes renders the registered activity codes with the raw
// values each one expects, in order.
func FormatActivityTypes(entries []registry.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Bold(string(e.Type)),
			ActivityLabel(e.Type),
			strconv.Itoa(e.Arity()),
			strings.Join(e.Fields, ", "),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Activity types"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable([]string{"CODE", "TYPE", "VALUES", "FIELDS"}, rows, 2))
	return b.String()
}
