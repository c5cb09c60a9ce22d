package formatter

import (
	"fmt"
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders a workout's share of a total like [████░░░░]  45%.
// Large shares are red, middling ones yellow and small ones green.
func RenderShare(share float64, width int) string {
	if share < 0 || math.IsNaN(share) {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(share * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if share >= 0.66 {
		style = StyleRed
	} else if share >= 0.33 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), share*100)
}
