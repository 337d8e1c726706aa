package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleIndex  = lipgloss.NewStyle().Foreground(colorGray).Width(4).Align(lipgloss.Right)
)

func formatLevels(levels []float64) string {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = util.FormatFloat(l)
	}
	return strings.Join(names, " → ")
}

// renderRouteText prints a summary of the route followed by its nodes.
func renderRouteText(w io.Writer, out routeOutput) error {
	lines := []string{
		styleTitle.Render("Route"),
		fmt.Sprintf("  cost    %s", styleNumber.Render(fmt.Sprintf("%.1f", out.Cost))),
		fmt.Sprintf("  levels  %s", formatLevels(out.Levels)),
		"",
		styleTitle.Render("Path"),
	}
	for i, n := range out.Nodes {
		line := fmt.Sprintf("%s  %.7f, %.7f  level %s", styleIndex.Render(fmt.Sprintf("%d.", i+1)),
			n.Lat, n.Lon, util.FormatFloat(n.Level))
		var notes []string
		if n.Transition != "" {
			notes = append(notes, "via "+n.Transition)
		}
		if n.Kind != "" {
			notes = append(notes, n.Kind)
		}
		if n.Synthetic {
			notes = append(notes, "query point")
		}
		if len(notes) > 0 {
			line += styleDim.Render("  (" + strings.Join(notes, ", ") + ")")
		}
		lines = append(lines, line)
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
