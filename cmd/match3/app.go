package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// loadGameConfig loads the config file and applies --difficulty.
func loadGameConfig() (config.Match3Config, error) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyMatch3Preset(&cfg, preset)
	}
	return cfg, nil
}

// loadLevels loads the level table from --levels or the default locations.
func loadLevels() (*levels.Table, error) {
	t, err := levels.Load(flagLevels)
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("level table %q has no levels", flagLevels)
	}
	return t, nil
}

// newLogger creates the charm logger used by the CLI.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
	})
}

// openLogFile opens ~/.arcade/match3.log for appending. While the TUI owns
// the terminal, warnings go there instead of stderr.
func openLogFile() (io.Writer, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "match3.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// loadSetup loads config and levels and opens the database. A database that
// cannot be opened is logged and play continues without persistence.
func loadSetup(logger *log.Logger) (tui.Setup, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return tui.Setup{}, err
	}
	table, err := loadLevels()
	if err != nil {
		return tui.Setup{}, err
	}
	if errs := levels.Lint(table, cfg.Board.Kinds); len(errs) > 0 {
		logger.Warn("level table has problems, run 'match3 lint'", "count", len(errs))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		store = nil
	}

	setup := tui.Setup{
		Config: cfg,
		Levels: table,
		Store:  store,
		Logger: logger,
	}
	// Registry factories build games from these defaults
	match3.SetDefaults(setup.Options(0))
	return setup, nil
}

// openStore opens the database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}
