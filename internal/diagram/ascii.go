package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/tkessler/goinsul/internal/thermal"
)

// DrawLossCurve renders a thickness sweep as a terminal plot. The
// curve makes the critical-diameter regime visible: on small bores the
// loss first rises with thickness before it falls.
func DrawLossCurve(points []thermal.SweepPoint) string {
	if len(points) == 0 {
		return ""
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.HeatLoss
	}

	caption := fmt.Sprintf("heat loss (W) over insulation thickness %.1f–%.1f mm",
		points[0].Thickness, points[len(points)-1].Thickness)

	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)

	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
