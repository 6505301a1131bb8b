package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagHistoryLevel int
	flagHistoryLimit int
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved campaign progress",
	Long: `Shows completed levels, stars and attempt statistics from the
database. With --history the latest attempts of one level are listed
instead; 'progress attempt <id>' shows a single attempt.

Examples:
  match3 progress
  match3 progress --history 3
  match3 progress attempt 5b1f...
  match3 progress reset
  match3 progress --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

var progressAttemptCmd = &cobra.Command{
	Use:   "attempt <id>",
	Short: "Show one recorded attempt",
	Args:  cobra.ExactArgs(1),
	Run:   runProgressAttempt,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all campaign progress",
	Long:  `Deletes every level record so only level 1 is unlocked again. Scores and attempts are kept.`,
	Args:  cobra.NoArgs,
	Run:   runProgressReset,
}

func init() {
	progressCmd.Flags().IntVar(&flagHistoryLevel, "history", 0, "List recent attempts of this level")
	progressCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of attempts shown with --history")
	progressCmd.AddCommand(progressAttemptCmd)
	progressCmd.AddCommand(progressResetCmd)
}

func runProgress(_ *cobra.Command, _ []string) {
	table, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if flagHistoryLevel > 0 {
		def, err := table.ByID(flagHistoryLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		attempts, err := store.RecentAttempts(def.ID, flagHistoryLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading attempts: %v\n", err)
			return
		}
		fmt.Printf("Level %d - %s\n\n", def.ID, def.Name)
		printAttempts(os.Stdout, attempts)
		return
	}

	progress, err := store.LoadProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading progress: %v\n", err)
		return
	}
	stats, err := store.AllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading attempts: %v\n", err)
		return
	}

	fmt.Printf("Stars: %d/%d\n", progress.TotalStars(), 3*table.Len())
	fmt.Println()
	fmt.Printf("  %-3s  %-18s  %-5s  %-8s  %-5s  %s\n", "ID", "Name", "Stars", "Best", "Plays", "Wins")
	fmt.Printf("  %-3s  %-18s  %-5s  %-8s  %-5s  %s\n", "--", "----", "-----", "----", "-----", "----")

	for _, def := range table.Levels() {
		rec := progress[def.ID]
		st := stats[def.ID]
		status := fmt.Sprint(rec.Stars)
		if !progress.Unlocked(def.ID) {
			status = "-"
		}
		fmt.Printf("  %-3d  %-18s  %-5s  %-8d  %-5d  %d\n",
			def.ID, def.Name, status, rec.BestScore, st.Attempts, st.Wins)
	}
}

// printAttempts writes one line per attempt, newest first as given.
func printAttempts(w io.Writer, attempts []storage.Attempt) {
	if len(attempts) == 0 {
		fmt.Fprintln(w, "No attempts recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-16s  %-9s  %-8s  %-5s  %-5s  %s\n", "Date", "Outcome", "Score", "Stars", "Moves", "ID")
	fmt.Fprintf(w, "  %-16s  %-9s  %-8s  %-5s  %-5s  %s\n", "----", "-------", "-----", "-----", "-----", "--")
	for _, a := range attempts {
		fmt.Fprintf(w, "  %-16s  %-9s  %-8d  %-5d  %-5d  %s\n",
			a.CreatedAt.Format("2006-01-02 15:04"), a.Outcome, a.Score, a.Stars, a.MovesUsed, a.ID)
	}
}

func runProgressAttempt(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	a, err := store.AttemptByID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if a == nil {
		fmt.Fprintf(os.Stderr, "No attempt with id %q\n", args[0])
		os.Exit(1)
	}

	fmt.Printf("Attempt %s\n", a.ID)
	fmt.Printf("  Game:    %s\n", a.GameID)
	if a.LevelID > 0 {
		fmt.Printf("  Level:   %d\n", a.LevelID)
	}
	fmt.Printf("  Outcome: %s\n", a.Outcome)
	fmt.Printf("  Score:   %d\n", a.Score)
	fmt.Printf("  Stars:   %d\n", a.Stars)
	fmt.Printf("  Moves:   %d\n", a.MovesUsed)
	fmt.Printf("  Date:    %s\n", a.CreatedAt.Format("2006-01-02 15:04"))
}

func runProgressReset(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if err := store.ResetProgress(); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting progress: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Progress reset. Level 1 is the only unlocked level.")
}
