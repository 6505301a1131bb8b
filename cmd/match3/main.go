// match3 is a terminal match-3 puzzle game with a level campaign, an
// endless mode and an SSH server for remote play.
//
// Usage:
//
//	match3 play              - Start the menu (or a level directly)
//	match3 levels            - List campaign levels and progress
//	match3 progress          - Show or reset saved progress
//	match3 lint              - Check a level file for content errors
//	match3 hint              - Print a seeded board and a valid swap
//	match3 config            - Print the default or effective config
//	match3 serve             - Start SSH server for remote play
//	match3 scores [game]     - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom game config YAML
//	--levels <path>       - Custom level table YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap gems in your terminal",
	Long: `Match-3 is a terminal puzzle game: swap neighboring gems to line up
three or more of a kind, chain cascades, and clear level goals before
the moves run out.

Available commands:
  play      - Play the campaign or endless mode
  levels    - List campaign levels and your progress
  progress  - Show or reset saved progress
  lint      - Check level content
  hint      - Print a seeded board with a suggested swap
  config    - Print the game config
  serve     - Start SSH server for remote play
  scores    - View high scores

Examples:
  match3 play
  match3 play --level 3
  match3 play --endless --difficulty easy
  match3 lint --levels ./my_levels.yaml
  match3 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores and progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to custom level table YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
