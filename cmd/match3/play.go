package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

var (
	flagLevel   int
	flagEndless bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign or endless mode",
	Long: `Start the game menu, or jump straight into a level.

Without flags the main menu opens. Pick the campaign to continue from
your first unfinished level, "Select Level..." to replay any unlocked
level, or endless mode for unlimited moves.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Space/X          - Select gem (then move to swap)
  Enter            - Swap selected gem with cursor
  ?                - Show a hint
  P                - Pause (between swaps)
  R                - Restart level
  Esc/B            - Back to menu
  Q/Ctrl+C         - Quit

Examples:
  match3 play
  match3 play --level 4
  match3 play --endless --seed 42
  match3 play --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start this campaign level directly")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode directly")
}

func runPlay(_ *cobra.Command, _ []string) {
	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(logOut)

	setup, err := loadSetup(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if setup.Store != nil {
		defer setup.Store.Close()
	}

	cfg := runtimeConfig()

	if flagEndless || flagLevel > 0 {
		if err := playDirect(setup, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runMenu(setup, cfg)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// playDirect runs a single game chosen by --level or --endless.
func playDirect(setup tui.Setup, cfg core.RuntimeConfig) error {
	gameID := match3.IDCampaign
	if flagEndless {
		gameID = match3.IDEndless
	} else {
		if _, err := setup.Levels.ByID(flagLevel); err != nil {
			return fmt.Errorf("%w (run 'match3 levels')", err)
		}
		if !setup.LoadProgress().Unlocked(flagLevel) {
			return fmt.Errorf("level %d is locked", flagLevel)
		}
	}

	game, err := setup.NewGame(gameID, flagLevel)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return tui.Run(game, setup.Store, cfg)
}

// runMenu loops between the menu, the level selector, the progress board
// and games until the user quits.
func runMenu(setup tui.Setup, cfg core.RuntimeConfig) {
	for {
		progress := setup.LoadProgress()
		menuResult, err := tui.RunMenu(cfg, progress.TotalStars(), 3*setup.Levels.Len())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(setup, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		gameID := menuResult.GameID
		startLevel := 0
		if menuResult.WantsLevels {
			level, quit, selErr := tui.RunLevelSelector(setup.Levels, progress, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if quit {
				return
			}
			if level == 0 {
				continue // Back to menu
			}
			gameID = match3.IDCampaign
			startLevel = level
		}
		if gameID == "" {
			return
		}

		game, err := setup.NewGame(gameID, startLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless the user pinned one
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, setup.Store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
