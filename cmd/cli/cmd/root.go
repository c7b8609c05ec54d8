// Package cmd provides the CLI commands for archsim.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"archsim/internal/logging"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "archsim",
	Short: "Validate cloud architecture designs against level requirements",
	Long: `archsim evaluates a player-built architecture graph against a level's
structural, security, cost, and latency requirements.

Examples:
  archsim validate --level 1 design.yaml
  archsim validate --level 7 --strict --format json design.yaml
  archsim catalog
  archsim levels`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	_ = logging.Initialize(cfg)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("archsim version 0.1.0")
	},
}
