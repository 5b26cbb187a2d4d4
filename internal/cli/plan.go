package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgreer/pawfuel/internal/catalog"
	"github.com/rgreer/pawfuel/internal/render"
)

// dateLayout is the accepted format of the --start flag.
const dateLayout = "2006-01-02"

// NewPlanCmd creates the "plan" command: per-day totals for the standard
// meal plan, measured against the pet's weight-loss feeding target.
func NewPlanCmd() *cobra.Command {
	var (
		days  int
		start string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Summarize daily plans against the feeding target",
		Example: `  # Today's plan
  pawfuel plan

  # A week starting next Monday
  pawfuel plan --days 7 --start 2026-08-24`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days < 1 {
				return fmt.Errorf("days must be >= 1, got %d", days)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			startDay := time.Now().Truncate(24 * time.Hour)
			if start != "" {
				startDay, err = time.Parse(dateLayout, start)
				if err != nil {
					return fmt.Errorf("parsing --start: %w", err)
				}
			}

			profile := cfg.Profile.ToDogProfile()
			target := profile.WeightLossTargetKcal(cfg.Plan.WeightLossFactor)
			logger.Debug().
				Int("days", days).
				Float64("target_kcal", target).
				Msg("building meal plans")

			plans := catalog.WeekPlan(startDay, days)
			styled := isTerminal(os.Stdout)

			for _, plan := range plans {
				summary := render.DaySummary{
					Day:        plan.Day(),
					PetName:    profile.Name,
					TotalKJ:    plan.TotalKJ(),
					TotalKcal:  plan.TotalKcal(),
					TotalCost:  plan.TotalCost(),
					TargetKcal: target,
				}

				if styled {
					if err := render.DaySummaryBox(cmd.OutOrStdout(), summary); err != nil {
						return err
					}
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %s  %s of target\n",
					summary.Day.Format(dateLayout),
					render.Energy(summary.TotalKJ, "kJ"),
					render.Energy(summary.TotalKcal, "kcal"),
					render.Currency(summary.TotalCost),
					render.Percent(summary.PercentOfTarget()),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "number of consecutive days to plan")
	cmd.Flags().StringVar(&start, "start", "", "first plan date (YYYY-MM-DD, default today)")

	return cmd
}
