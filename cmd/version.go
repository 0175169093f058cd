package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gotendon/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotendon",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gotendon v%s\n", version.Version)
		fmt.Println("Post-Tensioning Tendon Profile Designer")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
