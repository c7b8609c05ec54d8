// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"archsim/core/catalog"
)

// catalogCmd lists the service catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the service catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		categories := []catalog.Category{
			catalog.CategoryCompute,
			catalog.CategoryStorage,
			catalog.CategoryDatabase,
			catalog.CategoryNetworking,
			catalog.CategorySecurity,
			catalog.CategoryAnalytics,
			catalog.CategoryMessaging,
			catalog.CategoryCDN,
			catalog.CategoryManagement,
			catalog.CategoryMedia,
		}

		for _, category := range categories {
			ids := cat.ByCategory(category)
			if len(ids) == 0 {
				continue
			}
			fmt.Printf("%s:\n", category)
			for _, id := range ids {
				entry, _ := cat.Get(id)
				fmt.Printf("  %-18s %-26s $%s/h  %.0fms\n",
					id, entry.DisplayName, entry.CostPerHour.StringFixed(4), entry.LatencyMs)
			}
		}
		return nil
	},
}
