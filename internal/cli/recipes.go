package cli

import (
	"github.com/spf13/cobra"

	"github.com/rgreer/pawfuel/internal/catalog"
	"github.com/rgreer/pawfuel/internal/export"
	"github.com/rgreer/pawfuel/internal/nutrition"
	"github.com/rgreer/pawfuel/internal/render"
)

// sampleRecipes builds the catalog's standard meals in display order.
func sampleRecipes() []*nutrition.Recipe {
	return []*nutrition.Recipe{
		catalog.ChickenRiceBowl(),
		catalog.ChickenVegBowl(),
	}
}

// NewRecipesCmd creates the "recipes" command: the per-ingredient
// breakdown of every standard meal, with recipe totals on each row.
func NewRecipesCmd() *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Show the ingredient breakdown of the standard meals",
		Example: `  # Aligned table
  pawfuel recipes

  # CSV for a spreadsheet
  pawfuel recipes --csv > recipes.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recipes := sampleRecipes()
			logger.Debug().Int("recipes", len(recipes)).Msg("rendering recipe breakdown")

			rows := export.IngredientRows(recipes)
			if asCSV {
				return export.WriteCSV(cmd.OutOrStdout(), rows)
			}
			return render.Table(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "emit CSV instead of an aligned table")

	return cmd
}
