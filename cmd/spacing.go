package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotendon/internal/tendon"
	"github.com/alexiusacademia/gotendon/internal/units"
	"github.com/spf13/cobra"
)

var (
	spacingLength  float64
	spacingNominal float64
	spacingUnit    string
)

var spacingCmd = &cobra.Command{
	Use:   "spacing",
	Short: "Distribute sample spacing over a span",
	Long: `Partition a span into sample intervals at a nominal spacing,
applying the remainder-distribution rules used by the profile
calculation.

A remainder of at least 70% of the spacing leads the list as its own
segment; a smaller remainder is merged with one nominal segment and
split in two. Metric spans at 1000 mm spacing split to round hundreds.

Examples:
  gotendon spacing --length 5100 --spacing 1000
  gotendon spacing --length 62.5 --spacing 12 --unit imperial`,
	Run: runSpacing,
}

func init() {
	rootCmd.AddCommand(spacingCmd)

	spacingCmd.Flags().Float64VarP(&spacingLength, "length", "l", 0, "Span length [required]")
	spacingCmd.Flags().Float64VarP(&spacingNominal, "spacing", "s", 0, "Nominal spacing (default per unit system)")
	spacingCmd.Flags().StringVarP(&spacingUnit, "unit", "u", "metric", "Unit system: metric or imperial")

	spacingCmd.MarkFlagRequired("length")
}

func runSpacing(cmd *cobra.Command, args []string) {
	unit := units.Parse(spacingUnit)
	if spacingNominal == 0 {
		spacingNominal = unit.DefaultSpacing()
	}

	segments := tendon.Distribute(spacingLength, spacingNominal, unit)

	fmt.Println()
	fmt.Println("SPACING DISTRIBUTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")

	if len(segments) == 0 {
		fmt.Println("  No segments — span and spacing must be positive.")
		fmt.Println()
		return
	}

	u := unit.Label()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tSegment (%s)\tCumulative (%s)\n", u, u)
	fmt.Fprintf(w, "  ─\t───────────\t───────────────\n")
	total := 0.0
	for i, s := range segments {
		total += s
		fmt.Fprintf(w, "  %d\t%.2f\t%.2f\n", i+1, s, total)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d segments, total %.2f %s\n", len(segments), total, u)
	fmt.Println()
}
