package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgreer/pawfuel/internal/catalog"
	"github.com/rgreer/pawfuel/internal/nutrition"
	"github.com/rgreer/pawfuel/internal/render"
)

// groceryRows flattens a grocery list into table rows.
func groceryRows(list nutrition.GroceryList) [][]string {
	rows := [][]string{{"food", "grams", "est_cost"}}
	for _, line := range list.Lines() {
		rows = append(rows, []string{
			line.Food.Name(),
			render.Grams(line.Grams),
			render.Currency(line.Cost()),
		})
	}
	return rows
}

// NewGroceryCmd creates the "grocery" command: total grams of each food
// needed across the requested span of daily plans.
func NewGroceryCmd() *cobra.Command {
	var (
		days  int
		start string
	)

	cmd := &cobra.Command{
		Use:   "grocery",
		Short: "Aggregate grocery needs across daily plans",
		Example: `  # What to buy for a week of meals
  pawfuel grocery --days 7`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days < 1 {
				return fmt.Errorf("days must be >= 1, got %d", days)
			}

			startDay := time.Now().Truncate(24 * time.Hour)
			if start != "" {
				var err error
				startDay, err = time.Parse(dateLayout, start)
				if err != nil {
					return fmt.Errorf("parsing --start: %w", err)
				}
			}

			plans := catalog.WeekPlan(startDay, days)
			list := nutrition.BuildGroceryList(plans)
			logger.Debug().Int("days", days).Int("foods", len(list)).Msg("built grocery list")

			if err := render.Table(cmd.OutOrStdout(), groceryRows(list)); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nEstimated total: %s\n", render.Currency(list.TotalCost()))
			return err
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "number of consecutive days to shop for")
	cmd.Flags().StringVar(&start, "start", "", "first plan date (YYYY-MM-DD, default today)")

	return cmd
}
