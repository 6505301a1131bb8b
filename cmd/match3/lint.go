package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check level content for errors",
	Long: `Validates the level table against the configured gem kinds:
ids, move budgets, star thresholds and goal targets. Exits with status 1
when problems are found.

Examples:
  match3 lint
  match3 lint --levels ./my_levels.yaml --config ./my_match3.yaml`,
	Args: cobra.NoArgs,
	Run:  runLint,
}

func runLint(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	table, err := levels.Load(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	errs := levels.Lint(table, cfg.Board.Kinds)
	if len(errs) == 0 {
		fmt.Printf("%d levels OK\n", table.Len())
		return
	}

	for _, e := range errs {
		fmt.Println(e.Error())
	}
	fmt.Printf("\n%d problem(s) found\n", len(errs))
	os.Exit(1)
}
