// Package cli implements the flyfood command line.
package cli

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "flyfood",
	Short: "Plan minimum-cost closed delivery tours for a drone on a grid",
	Long: `flyfood reads a delivery grid, finds the origin R and every labeled
delivery point, and evaluates every visiting order to report the cheapest
closed tour under Manhattan distance.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// Operation timing lines are only useful when debugging.
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log operation timings to stderr")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
