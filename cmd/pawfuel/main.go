// Command pawfuel is the terminal front end for the pet nutrition model:
// food catalog tables, recipe breakdowns, daily plan summaries, feeding
// targets, and grocery lists.
package main

import (
	"os"

	"github.com/rgreer/pawfuel/internal/cli"
	"github.com/rgreer/pawfuel/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

func main() {
	if err := run(); err != nil {
		// Cobra already printed the error; just set the exit code.
		os.Exit(1)
	}
}
