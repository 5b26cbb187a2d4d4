package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgreer/pawfuel/internal/render"
)

// NewTargetCmd creates the "target" command: the pet's resting energy
// requirement and weight-loss feeding target from the configured profile.
func NewTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Show daily energy requirement and weight-loss target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			profile := cfg.Profile.ToDogProfile()
			factor := cfg.Plan.WeightLossFactor

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile: %s (%.1f kg, ideal %.1f kg)\n\n",
				profile.Name, profile.CurrentWeightKg, profile.IdealWeightKg)
			fmt.Fprintf(out, "RER at current weight:  %s/day\n",
				render.Energy(profile.RERKcal(), "kcal"))
			fmt.Fprintf(out, "Weight-loss target:     %s/day (%s/day) at factor %.2f\n",
				render.Energy(profile.WeightLossTargetKcal(factor), "kcal"),
				render.Energy(profile.WeightLossTargetKJ(factor), "kJ"),
				factor)
			return nil
		},
	}

	return cmd
}
