package cli

import (
	"github.com/spf13/cobra"

	"github.com/rgreer/pawfuel/internal/catalog"
	"github.com/rgreer/pawfuel/internal/export"
	"github.com/rgreer/pawfuel/internal/render"
)

// NewFoodsCmd creates the "foods" command: the catalog as a table of
// energy densities and prices, one row per food.
func NewFoodsCmd() *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "foods",
		Short: "List catalog foods with energy density and price",
		Example: `  # Aligned table
  pawfuel foods

  # CSV for a spreadsheet
  pawfuel foods --csv > foods.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			foods := catalog.Foods()
			logger.Debug().Int("foods", len(foods)).Msg("rendering food catalog")

			rows := export.FoodRows(foods)
			if asCSV {
				return export.WriteCSV(cmd.OutOrStdout(), rows)
			}
			return render.Table(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "emit CSV instead of an aligned table")

	return cmd
}
