package formatter

import (
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorEnabled forces styled output on or off for every style in the
// package. Without a call, lipgloss detects the terminal from stdout.
func SetColorEnabled(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ActivityStyle returns the style used for an activity's label.
func ActivityStyle(t domain.ActivityType) lipgloss.Style {
	switch t {
	case domain.ActivityRunning:
		return StyleRed
	case domain.ActivityWalking:
		return StyleGreen
	case domain.ActivitySwimming:
		return StyleBlue
	default:
		return StyleDim
	}
}

// ActivityLabel renders the activity's report label in its color.
func ActivityLabel(t domain.ActivityType) string {
	return ActivityStyle(t).Render(t.Label())
}
