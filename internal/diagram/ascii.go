package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gotendon/internal/tendon"
)

// DrawASCIIProfile renders the sampled tendon elevation as a terminal
// chart with an annotation block for the supports and any inflection
// points. The profile is resampled to a fixed column count so chart
// width does not depend on the spacing configuration.
func DrawASCIIProfile(cfg tendon.ProfileConfig, result tendon.CalculationResult) string {
	if len(result.Points) == 0 || cfg.Length <= 0 {
		return "  (no profile to draw)\n"
	}

	const columns = 60
	series := make([]float64, columns+1)
	for i := 0; i <= columns; i++ {
		x := cfg.Length * float64(i) / float64(columns)
		series[i] = tendon.Height(cfg, x)
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(columns),
		asciigraph.Caption(fmt.Sprintf("Tendon elevation — %s", cfg.SelectedProfile.Name())),
	)

	var sb strings.Builder
	sb.WriteString(graph)
	sb.WriteString("\n\n")

	unit := cfg.Unit.Label()
	sb.WriteString(fmt.Sprintf("  High end:  y = %.2f %s at x = 0\n", result.Points[0].Y, unit))
	last := result.Points[len(result.Points)-1]
	sb.WriteString(fmt.Sprintf("  Far end:   y = %.2f %s at x = %.2f\n", last.Y, unit, last.X))
	for i, ip := range result.InflectionPoints {
		sb.WriteString(fmt.Sprintf("  Inflection %d: x = %.2f, y = %.2f\n", i+1, ip.X, ip.Y))
	}

	return sb.String()
}
