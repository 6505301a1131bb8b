package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels and your progress",
	Long: `Shows every level in the campaign with its move budget, goals,
star thresholds and your saved stars.

Examples:
  match3 levels
  match3 levels --levels ./my_levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	table, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	progress := make(levels.Progress)
	if store, err := storage.Open(flagDBPath); err == nil {
		if p, loadErr := store.LoadProgress(); loadErr == nil {
			progress = p
		}
		store.Close()
	}

	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-18s  %-5s  %-7s  %-16s  %s\n", "ID", "Name", "Moves", "Stars", "Thresholds", "Goals")
	fmt.Printf("  %-3s  %-18s  %-5s  %-7s  %-16s  %s\n", "--", "----", "-----", "-----", "----------", "-----")

	for _, def := range table.Levels() {
		stars := "locked"
		if progress.Unlocked(def.ID) {
			n := progress[def.ID].Stars
			stars = strings.Repeat("*", n) + strings.Repeat(".", 3-n)
		}
		fmt.Printf("  %-3d  %-18s  %-5d  %-7s  %-16s  %s\n",
			def.ID, def.Name, def.Moves, stars, thresholdsText(def), goalsText(def))
	}

	fmt.Println()
	fmt.Printf("Stars: %d/%d\n", progress.TotalStars(), 3*table.Len())
	fmt.Println("Run 'match3 play --level <id>' to play a level.")
}

// thresholdsText formats the star thresholds as "a/b/c".
func thresholdsText(def levels.Definition) string {
	parts := make([]string, len(def.StarThresholds))
	for i, t := range def.StarThresholds {
		parts[i] = fmt.Sprint(t)
	}
	return strings.Join(parts, "/")
}

// goalsText describes the goal clauses of def.
func goalsText(def levels.Definition) string {
	var parts []string
	for _, c := range def.Goals.Clauses() {
		switch c.Kind {
		case levels.ClauseScore:
			parts = append(parts, fmt.Sprintf("score %d", c.Target))
		case levels.ClauseGem:
			parts = append(parts, fmt.Sprintf("%d %s", c.Target, strings.ToLower(match3.GemName(c.Gem))))
		case levels.ClauseAny:
			parts = append(parts, fmt.Sprintf("%d any", c.Target))
		}
	}
	return strings.Join(parts, ", ")
}
