package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gotendon/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotendon",
	Short: "Post-Tensioning Tendon Profile Designer",
	Long: `gotendon - Go Tendon Profile Designer

A CLI tool for computing the vertical drape profile of post-tensioning
tendons along a horizontal span, for sizing duct and strand geometry.

This tool helps structural engineers perform:
  - Drape profile calculation for eight curve families
  - Reverse-curve sizing from a minimum bend radius
  - Sample spacing distribution with remainder handling
  - Curvature summary (Σβ) for friction-loss estimates
  - Drape schedule export (CSV) and CAD export (DXF)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotendon v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Tendon Profile Designer                              ║")
		fmt.Printf("  ║   %s ©  %s                                ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing post-tensioning tendon drape profiles.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Eight closed-form drape curve families")
		fmt.Println("    • Reverse curves sized from a minimum bend radius")
		fmt.Println("    • Spacing distribution with remainder handling")
		fmt.Println("    • Drape schedules, elevation charts, CSV and DXF export")
		fmt.Println()
		fmt.Println("  Use 'gotendon --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
