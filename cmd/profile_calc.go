package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotendon/internal/diagram"
	"github.com/alexiusacademia/gotendon/internal/export"
	"github.com/alexiusacademia/gotendon/internal/tendon"
	"github.com/alexiusacademia/gotendon/internal/units"
	"github.com/spf13/cobra"
)

var (
	// Geometry inputs
	calcLength    float64
	calcHighPt    float64
	calcLowPt     float64
	calcMinRadius float64

	// Sampling inputs
	calcSpacing  float64
	calcRounding float64

	// Curve selection
	calcProfile    int
	calcInflection string
	calcFromLow    bool
	calcUnit       string

	// Output options
	calcShowChart bool
	calcPNG       string
	calcCSV       string
	calcDXF       string
)

var profileCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate the drape schedule for a tendon span",
	Long: `Calculate the tendon drape profile: sample spacing distribution,
heights at each sample point, rounded drape labels, curvature summary
(Σβ) and inflection points.

Profile families (see 'gotendon profile list'):
  1  Simple half parabola            5  Straight, reverse at top end
  2  Half parabola w/ reverse curve  6  Straight, reverse at bottom end
  3  Full parabola w/ reverse curves 7  Inverted simple half parabola
  4  Straight w/ parabolic ends      8  Half parabola w/ mid-point reverse

The inflection override accepts an absolute distance ("1200") or a
percentage of the span ("15%"). Invalid or non-positive overrides fall
back to automatic sizing from the minimum bend radius.

Examples:
  # 7 m span, 450/45 mm heights, 1 m spacing, profile 2
  gotendon profile calc --length 7000 --high 450 --low 45 --profile 2

  # Imperial span with CSV and DXF export
  gotendon profile calc --length 276 --high 18 --low 2 --unit imperial \
    --spacing 36 --csv drapes.csv --dxf profile.dxf`,
	Run: runProfileCalc,
}

func init() {
	profileCmd.AddCommand(profileCalcCmd)

	// Geometry flags
	profileCalcCmd.Flags().Float64VarP(&calcLength, "length", "l", 0, "Span length [required]")
	profileCalcCmd.Flags().Float64Var(&calcHighPt, "high", 0, "Tendon height at the high end [required]")
	profileCalcCmd.Flags().Float64Var(&calcLowPt, "low", 0, "Tendon height at the low end")
	profileCalcCmd.Flags().Float64VarP(&calcMinRadius, "radius", "r", 0, "Minimum bend radius (default per unit system)")

	// Sampling flags
	profileCalcCmd.Flags().Float64VarP(&calcSpacing, "spacing", "s", 0, "Nominal sample spacing (default per unit system)")
	profileCalcCmd.Flags().Float64Var(&calcRounding, "rounding", 0, "Drape rounding increment (default per unit system)")

	// Curve selection flags
	profileCalcCmd.Flags().IntVarP(&calcProfile, "profile", "p", 1, "Profile family (1-8)")
	profileCalcCmd.Flags().StringVarP(&calcInflection, "inflection", "i", "", "Inflection override: distance or percent (e.g. 1200 or 15%)")
	profileCalcCmd.Flags().BoolVar(&calcFromLow, "from-low", false, "Distribute spacing from the low-point end")
	profileCalcCmd.Flags().StringVarP(&calcUnit, "unit", "u", "metric", "Unit system: metric or imperial")

	// Output flags
	profileCalcCmd.Flags().BoolVar(&calcShowChart, "chart", true, "Print the ASCII elevation chart")
	profileCalcCmd.Flags().StringVar(&calcPNG, "png", "", "Write an elevation image (.png/.svg/.pdf)")
	profileCalcCmd.Flags().StringVar(&calcCSV, "csv", "", "Write the drape schedule as CSV")
	profileCalcCmd.Flags().StringVar(&calcDXF, "dxf", "", "Write the profile polyline as DXF")

	profileCalcCmd.MarkFlagRequired("length")
	profileCalcCmd.MarkFlagRequired("high")
}

func runProfileCalc(cmd *cobra.Command, args []string) {
	unit := units.Parse(calcUnit)
	if calcSpacing == 0 {
		calcSpacing = unit.DefaultSpacing()
	}
	if calcRounding == 0 {
		calcRounding = unit.DefaultRounding()
	}
	if calcMinRadius == 0 {
		calcMinRadius = unit.DefaultMinRadius()
	}

	cfg := tendon.ProfileConfig{
		Length:            calcLength,
		HighPt:            calcHighPt,
		LowPt:             calcLowPt,
		MinRadius:         calcMinRadius,
		Spacing:           calcSpacing,
		Rounding:          calcRounding,
		SelectedProfile:   tendon.Profile(calcProfile),
		InflectionPt:      calcInflection,
		SpacingFromLowEnd: calcFromLow,
		Unit:              unit,
	}

	result := tendon.Calculate(cfg)
	u := unit.Label()

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          POST-TENSIONING TENDON DRAPE PROFILE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span Length:\t%.2f %s\n", cfg.Length, u)
	fmt.Fprintf(w, "  High Point:\t%.2f %s\n", cfg.HighPt, u)
	fmt.Fprintf(w, "  Low Point:\t%.2f %s\n", cfg.LowPt, u)
	fmt.Fprintf(w, "  Min Bend Radius:\t%.2f %s\n", cfg.MinRadius, u)
	fmt.Fprintf(w, "  Nominal Spacing:\t%.2f %s\n", cfg.Spacing, u)
	fmt.Fprintf(w, "  Drape Rounding:\t%g %s\n", cfg.Rounding, u)
	fmt.Fprintf(w, "  Profile:\t%d - %s\n", calcProfile, cfg.SelectedProfile.Name())
	if cfg.InflectionPt != "" {
		fmt.Fprintf(w, "  Inflection Override:\t%s\n", cfg.InflectionPt)
	}
	fmt.Fprintf(w, "  Unit System:\t%s\n", unit)
	w.Flush()
	fmt.Println()

	if len(result.Points) == 0 {
		fmt.Println("  No profile computed — span and spacing must be positive.")
		fmt.Println()
		return
	}

	// Drape schedule
	fmt.Println("DRAPE SCHEDULE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tx (%s)\tSpacing (%s)\tHeight (%s)\tDrape (%s)\n", u, u, u, u)
	fmt.Fprintf(w, "  ─\t──────\t───────────\t──────────\t─────────\n")
	for i, pt := range result.Points {
		spacing := "-"
		if i > 0 && i-1 < len(result.Spaces) {
			spacing = fmt.Sprintf("%.2f", result.Spaces[i-1])
		}
		fmt.Fprintf(w, "  %d\t%.2f\t%s\t%.4f\t%g\n", i+1, pt.X, spacing, pt.Y, pt.Label)
	}
	w.Flush()
	fmt.Println()

	// Curvature summary
	fmt.Println("CURVATURE SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sag (|Δh|):\t%.2f %s\n", cfg.Sag(), u)
	for i, ip := range result.InflectionPoints {
		fmt.Fprintf(w, "  Inflection Point %d:\tx = %.2f, y = %.2f\n", i+1, ip.X, ip.Y)
	}
	if len(result.InflectionPoints) == 0 {
		fmt.Fprintf(w, "  Inflection Points:\tnone\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  TOTAL ANGULAR CHANGE Σβ = %.3f rad     \n", result.BetaSum)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if calcShowChart {
		fmt.Println(diagram.DrawASCIIProfile(cfg, result))
	}

	if calcPNG != "" {
		if err := diagram.ExportProfileDiagram(cfg, result, calcPNG); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		} else {
			fmt.Printf("  Elevation image written to %s\n", calcPNG)
		}
	}
	if calcCSV != "" {
		if err := export.ExportCSV(cfg, result, calcCSV); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		} else {
			fmt.Printf("  Drape schedule written to %s\n", calcCSV)
		}
	}
	if calcDXF != "" {
		if err := export.ExportDXF(result, calcDXF); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing DXF: %v\n", err)
		} else {
			fmt.Printf("  DXF profile written to %s\n", calcDXF)
		}
	}
	fmt.Println()
}
