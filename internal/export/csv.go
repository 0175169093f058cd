// Package export writes calculation results to engineer-facing file
// formats. Exporters only read the result; they never feed back into
// the profile engine.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/gotendon/internal/tendon"
)

// WriteCSV writes the drape schedule: one row per sample point with its
// distance, the spacing that led to it, the raw height and the rounded
// drape label.
func WriteCSV(w io.Writer, cfg tendon.ProfileConfig, result tendon.CalculationResult) error {
	cw := csv.NewWriter(w)
	unit := cfg.Unit.Label()

	header := []string{
		"point",
		fmt.Sprintf("x (%s)", unit),
		fmt.Sprintf("spacing (%s)", unit),
		fmt.Sprintf("height (%s)", unit),
		fmt.Sprintf("drape (%s)", unit),
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, pt := range result.Points {
		spacing := ""
		if i > 0 && i-1 < len(result.Spaces) {
			spacing = formatLen(result.Spaces[i-1])
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			formatLen(pt.X),
			spacing,
			fmt.Sprintf("%.4f", pt.Y),
			formatLen(pt.Label),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the drape schedule to a file.
func ExportCSV(cfg tendon.ProfileConfig, result tendon.CalculationResult, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, cfg, result)
}

// formatLen trims trailing zeros so metric schedules show whole
// millimetres while imperial fractions keep their decimals.
func formatLen(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
