package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golift/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of golift",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("golift v%s\n", version.Version)
		fmt.Println("Wing geometry and section model for lifting-line analysis")
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
