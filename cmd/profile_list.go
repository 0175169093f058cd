package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotendon/internal/tendon"
	"github.com/spf13/cobra"
)

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available profile curve families",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("AVAILABLE PROFILE FAMILIES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, p := range tendon.Profiles() {
			fmt.Fprintf(w, "  %d\t%s\n", int(p), p.Name())
		}
		w.Flush()
		fmt.Println()
		fmt.Println("  Families 2, 3, 5 and 6 insert reverse curves sized from the")
		fmt.Println("  minimum bend radius. Family 4 uses fixed quarter-span ramps.")
		fmt.Println("  An unrecognized id falls back to a straight line.")
		fmt.Println()
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
}
