package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/career"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List careers from the built-in catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, _ := setup()

		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")

		records, err := listCatalog(career.Default(), category, search)
		if err != nil {
			logger.Fatal("listing catalog", zap.Error(err))
		}

		renderCatalog(os.Stdout, records)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringP("category", "c", "", "show only one category (name or slug, e.g. technology)")
	catalogCmd.Flags().StringP("search", "q", "", "case-insensitive search in titles, descriptions and skills")
}

// listCatalog applies the optional search and category filters. Both may be combined.
func listCatalog(catalog *career.Catalog, category, search string) ([]career.Record, error) {
	records := catalog.All()
	if search != "" {
		records = catalog.Search(search)
	}

	if category == "" {
		return records, nil
	}

	cat, err := career.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	filtered := make([]career.Record, 0, len(records))
	for _, r := range records {
		if r.Category == cat {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}
