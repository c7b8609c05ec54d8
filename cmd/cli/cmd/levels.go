// Package cmd - levels command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// levelsCmd lists the available levels
var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the available levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadLevels()
		if err != nil {
			return err
		}

		for _, id := range registry.IDs() {
			spec, _ := registry.Get(id)
			fmt.Printf("%2d. %s\n", spec.ID, spec.Title)
			fmt.Printf("    %s\n", spec.Objective)
			fmt.Printf("    requires: %s\n", strings.Join(spec.RequiredTypes, ", "))
			fmt.Printf("    budget: $%s/h, max latency: %.0fms\n\n",
				spec.Budget.StringFixed(2), spec.MaxLatencyMs)
		}
		return nil
	},
}
