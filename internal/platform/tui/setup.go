package tui

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Setup carries what the screens need to build games and show progress.
// Store may be nil, in which case progress lives only as long as a game.
type Setup struct {
	Config config.Match3Config
	Levels *levels.Table
	Store  *storage.Store
	Logger *log.Logger
}

// withDefaults fills unset fields.
func (s Setup) withDefaults() Setup {
	if s.Config.Board.Rows == 0 {
		s.Config = config.DefaultMatch3Config()
	}
	if s.Levels == nil {
		s.Levels = levels.Default()
	}
	if s.Logger == nil {
		s.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "match3"})
	}
	return s
}

// Options returns game options backed by the store.
func (s Setup) Options(startLevel int) match3.Options {
	s = s.withDefaults()
	opts := match3.Options{
		Config:     s.Config,
		Levels:     s.Levels,
		Logger:     s.Logger,
		StartLevel: startLevel,
	}
	// A nil *Store must not end up inside a non-nil interface
	if s.Store != nil {
		opts.Progress = s.Store.Progress()
		opts.Attempts = s.Store
	}
	return opts
}

// NewGame creates the game for gameID. Match-3 modes get their own
// options so concurrent sessions never share package defaults.
func (s Setup) NewGame(gameID string, startLevel int) (registry.Game, error) {
	switch gameID {
	case match3.IDCampaign:
		return match3.NewWithOptions(match3.ModeCampaign, s.Options(startLevel)), nil
	case match3.IDEndless:
		return match3.NewWithOptions(match3.ModeEndless, s.Options(0)), nil
	}
	return registry.Create(gameID)
}

// LoadProgress reads stored progress. Failures are logged and treated as
// no progress.
func (s Setup) LoadProgress() levels.Progress {
	if s.Store == nil {
		return make(levels.Progress)
	}
	p, err := s.Store.LoadProgress()
	if err != nil {
		s.withDefaults().Logger.Warn("could not load progress", "error", err)
		return make(levels.Progress)
	}
	return p
}
