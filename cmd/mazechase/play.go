package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the selected layout pack.

Controls:
  Arrows/WASD/hjkl - Move
  Enter/Space      - Start, continue after a cleared level, play again
  P                - Pause
  R                - Restart after game over
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Two extra lives, slower ghosts, longer power pellets
  normal - Configured values
  hard   - One life less, faster ghosts, shorter power pellets
  fixed  - Ghosts never speed up between levels

Examples:
  mazechase play
  mazechase play --pack classic
  mazechase play --difficulty hard
  mazechase play --levels-dir ./my-mazes
  mazechase play --config ./my-mazechase.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// terminalConfig reads the terminal size for the TUI.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	eng, err := gameSetup(cfg, store, logger).NewEngine()
	if err != nil {
		return err
	}
	logger.Info("game started", "session", eng.Session().ID, "layout", eng.Session().Maze.ID())

	if err := tui.Run(eng, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	s := eng.Session()
	logger.Info("game finished", "score", s.Score, "level", s.Level, "state", s.State)
	return nil
}
