// Package cli wires the nutrition model to the terminal. All I/O lives
// here and in render; the model packages stay pure.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rgreer/pawfuel/internal/config"
	"github.com/rgreer/pawfuel/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Set once per invocation in PersistentPreRunE

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// rootCmdExample shows common invocations in help output.
const rootCmdExample = `  # Show the food catalog with energy densities and prices
  pawfuel foods

  # Daily plan summaries against the weight-loss target
  pawfuel plan --days 7

  # Grocery list for the coming week
  pawfuel grocery --days 7

  # Ingredient breakdown as CSV
  pawfuel recipes --csv > recipes.csv`

// NewRootCmd creates the root cobra command and registers all
// subcommands. Logging is configured in PersistentPreRunE from the config
// file, with --debug forcing console debug output.
func NewRootCmd(ver string) *cobra.Command {
	var cleanup func()

	cmd := &cobra.Command{
		Use:     "pawfuel",
		Short:   "Pet meal energy, cost, and grocery planning",
		Long:    "PawFuel: compute per-recipe and per-plan energy and cost totals,\ndaily feeding targets, and grocery lists for home-cooked pet food.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logCfg := cfg.Logging
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logCfg.Level = "debug"
				logCfg.Format = logging.FormatConsole
			}

			base, done, err := logging.New(logCfg)
			if err != nil {
				return err
			}
			cleanup = done
			logger = logging.ComponentLogger(base, "cli")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				cleanup()
			}
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", config.DefaultPath, "path to the pawfuel config file")

	cmd.AddCommand(NewFoodsCmd())
	cmd.AddCommand(NewRecipesCmd())
	cmd.AddCommand(NewPlanCmd())
	cmd.AddCommand(NewGroceryCmd())
	cmd.AddCommand(NewTargetCmd())

	return cmd
}

// loadConfig reads the --config flag and loads the configuration. A
// missing file yields defaults; a broken file is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
