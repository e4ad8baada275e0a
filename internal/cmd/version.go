package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Set via -ldflags at build time
	Version   = "0.1.0"
	GitCommit = "dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lossantos-cli %s (%s)\n", Version, GitCommit)
	},
}
