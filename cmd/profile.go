package cmd

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Tendon drape profile calculation",
	Long: `Compute the vertical drape profile of a post-tensioning tendon
along a horizontal span.

Subcommands:
  calc  - Calculate the drape schedule for a span
  list  - List the available profile curve families

Heights are measured from a common reference baseline; the high point
is at x = 0 and the low point at the far support (symmetric families
place the low point at midspan).`,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
