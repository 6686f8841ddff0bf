package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/engine"
	"github.com/vovakirdan/maze-chase/internal/registry"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

// CustomPack is the score table used for layouts loaded from a directory.
const CustomPack = "custom"

// GameSetup collects what is needed to build an engine for one player.
type GameSetup struct {
	Config    config.Config
	Pack      string
	LevelsDir string
	Seed      int64 // 0 picks a time-based seed
	Store     *storage.Store
	Logger    *log.Logger
}

// PackName returns the pack to play: Pack if set, then the config's
// gameplay.pack, then registry.Default.
func (g GameSetup) PackName() string {
	switch {
	case g.Pack != "":
		return g.Pack
	case g.Config.Gameplay.Pack != "":
		return g.Config.Gameplay.Pack
	}
	return registry.Default
}

// ScorePack returns the name scores are filed under.
func (g GameSetup) ScorePack() string {
	if g.LevelsDir != "" {
		return CustomPack
	}
	return g.PackName()
}

// NewEngine resolves the layouts and wires storage and logging into a new
// engine. A failing score lookup is logged and play continues without it.
func (g GameSetup) NewEngine() (*engine.Engine, error) {
	layouts, err := registry.Resolve(g.PackName(), g.LevelsDir)
	if err != nil {
		return nil, err
	}

	seed := g.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []engine.Option{engine.WithSeed(seed)}
	if g.Logger != nil {
		opts = append(opts, engine.WithLogger(g.Logger))
	}

	if g.Store != nil {
		pack := g.ScorePack()
		rec, ok, err := g.Store.HighScore(pack)
		switch {
		case err != nil && g.Logger != nil:
			g.Logger.Warn("could not load high score", "pack", pack, "error", err)
		case ok:
			opts = append(opts, engine.WithHighScore(rec))
		}
		opts = append(opts, engine.WithRecorder(g.Store.Recorder(pack)))
	}

	return engine.New(layouts, g.Config, opts...)
}
