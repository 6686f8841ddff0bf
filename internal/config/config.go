// Package config provides YAML-based configuration loading and difficulty
// presets for the maze-chase engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains all tunables of the simulation.
type Config struct {
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Schedule   []PhaseConfig    `yaml:"schedule"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Heuristics HeuristicsConfig `yaml:"heuristics"`
	Bonus      BonusConfig      `yaml:"bonus"`
}

// TimingConfig holds step intervals and timer lengths, in milliseconds.
type TimingConfig struct {
	PlayerStepMS         int `yaml:"player_step_ms"`
	GhostStepMS          int `yaml:"ghost_step_ms"`
	VulnerableExtraMS    int `yaml:"vulnerable_extra_ms"` // added to the ghost step while vulnerable
	GhostStepDecrementMS int `yaml:"ghost_step_decrement_ms"`
	GhostStepFloorMS     int `yaml:"ghost_step_floor_ms"`
	PowerMS              int `yaml:"power_ms"`
	ExitStaggerMS        int `yaml:"exit_stagger_ms"`
	ReentryMS            int `yaml:"reentry_ms"`
	ReadyMS              int `yaml:"ready_ms"`
	BonusMS              int `yaml:"bonus_ms"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Bonus       int `yaml:"bonus"` // multiplied by the level number
	GhostBase   int `yaml:"ghost_base"`
	Multiplier  int `yaml:"multiplier"`
	ExtraLifeAt int `yaml:"extra_life_at"` // 0 disables
}

// PhaseConfig is one scatter/chase entry. A non-positive MS holds the phase forever.
type PhaseConfig struct {
	Mode string `yaml:"mode"`
	MS   int    `yaml:"ms"`
}

// GameplayConfig defines session-level parameters.
type GameplayConfig struct {
	Lives    int    `yaml:"lives"`
	Pack     string `yaml:"pack"`
	TileSize int    `yaml:"tile_size"`
}

// HeuristicsConfig holds the ghost steering constants.
type HeuristicsConfig struct {
	SameCellPenalty   int     `yaml:"same_cell_penalty"`
	AdjacentPenalty   int     `yaml:"adjacent_penalty"`
	FleeMistakeChance float64 `yaml:"flee_mistake_chance"`
	ShyRadius         int     `yaml:"shy_radius"`
	AmbushLead        int     `yaml:"ambush_lead"`
	PincerLead        int     `yaml:"pincer_lead"`
}

// BonusConfig lists the eaten-collectible counts at which a bonus item appears.
type BonusConfig struct {
	After []int `yaml:"after"`
}

// Phase modes accepted in the schedule.
const (
	ModeScatter = "scatter"
	ModeChase   = "chase"
)

// Millis converts a millisecond setting to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Validate reports the first setting that would leave the engine undefined.
func (c Config) Validate() error {
	t := c.Timing
	positive := []struct {
		name string
		v    int
	}{
		{"timing.player_step_ms", t.PlayerStepMS},
		{"timing.ghost_step_ms", t.GhostStepMS},
		{"timing.ghost_step_floor_ms", t.GhostStepFloorMS},
		{"timing.power_ms", t.PowerMS},
		{"scoring.multiplier", c.Scoring.Multiplier},
		{"gameplay.lives", c.Gameplay.Lives},
		{"gameplay.tile_size", c.Gameplay.TileSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    int
	}{
		{"timing.vulnerable_extra_ms", t.VulnerableExtraMS},
		{"timing.ghost_step_decrement_ms", t.GhostStepDecrementMS},
		{"timing.exit_stagger_ms", t.ExitStaggerMS},
		{"timing.reentry_ms", t.ReentryMS},
		{"timing.ready_ms", t.ReadyMS},
		{"timing.bonus_ms", t.BonusMS},
		{"scoring.pellet", c.Scoring.Pellet},
		{"scoring.power_pellet", c.Scoring.PowerPellet},
		{"scoring.bonus", c.Scoring.Bonus},
		{"scoring.ghost_base", c.Scoring.GhostBase},
		{"scoring.extra_life_at", c.Scoring.ExtraLifeAt},
		{"heuristics.same_cell_penalty", c.Heuristics.SameCellPenalty},
		{"heuristics.adjacent_penalty", c.Heuristics.AdjacentPenalty},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, p.name, p.v)
		}
	}

	if t.GhostStepFloorMS > t.GhostStepMS {
		return fmt.Errorf("%w: timing.ghost_step_floor_ms %d exceeds ghost_step_ms %d", ErrInvalidConfig, t.GhostStepFloorMS, t.GhostStepMS)
	}

	if sc := c.Scoring; sc.Pellet >= sc.PowerPellet || sc.PowerPellet >= sc.Bonus {
		return fmt.Errorf("%w: scoring must rank pellet < power_pellet < bonus, got %d, %d, %d",
			ErrInvalidConfig, sc.Pellet, sc.PowerPellet, sc.Bonus)
	}

	if len(c.Schedule) == 0 {
		return fmt.Errorf("%w: schedule is empty", ErrInvalidConfig)
	}
	for i, p := range c.Schedule {
		if p.Mode != ModeScatter && p.Mode != ModeChase {
			return fmt.Errorf("%w: schedule[%d]: unknown mode %q", ErrInvalidConfig, i, p.Mode)
		}
		if p.MS <= 0 && i != len(c.Schedule)-1 {
			return fmt.Errorf("%w: schedule[%d]: only the last phase may hold forever", ErrInvalidConfig, i)
		}
	}

	if ch := c.Heuristics.FleeMistakeChance; ch < 0 || ch > 1 {
		return fmt.Errorf("%w: heuristics.flee_mistake_chance %v outside [0,1]", ErrInvalidConfig, ch)
	}

	prev := 0
	for i, n := range c.Bonus.After {
		if n <= prev {
			return fmt.Errorf("%w: bonus.after[%d] must be increasing and positive", ErrInvalidConfig, i)
		}
		prev = n
	}

	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
