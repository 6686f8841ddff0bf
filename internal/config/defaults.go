package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			PlayerStepMS:         120,
			GhostStepMS:          180,
			VulnerableExtraMS:    90,
			GhostStepDecrementMS: 10,
			GhostStepFloorMS:     80,
			PowerMS:              8000,
			ExitStaggerMS:        3000,
			ReentryMS:            3000,
			ReadyMS:              1500,
			BonusMS:              9000,
		},
		Scoring: ScoringConfig{
			Pellet:      10,
			PowerPellet: 50,
			Bonus:       100,
			GhostBase:   200,
			Multiplier:  1,
			ExtraLifeAt: 10000,
		},
		Schedule: []PhaseConfig{
			{Mode: ModeScatter, MS: 7000},
			{Mode: ModeChase, MS: 20000},
			{Mode: ModeScatter, MS: 7000},
			{Mode: ModeChase, MS: 20000},
			{Mode: ModeScatter, MS: 5000},
			{Mode: ModeChase, MS: 20000},
			{Mode: ModeScatter, MS: 5000},
			{Mode: ModeChase, MS: 0},
		},
		Gameplay: GameplayConfig{
			Lives:    3,
			Pack:     "arcade",
			TileSize: 18,
		},
		Heuristics: HeuristicsConfig{
			SameCellPenalty:   100,
			AdjacentPenalty:   5,
			FleeMistakeChance: 0.3,
			ShyRadius:         8,
			AmbushLead:        4,
			PincerLead:        2,
		},
		Bonus: BonusConfig{
			After: []int{70, 170},
		},
	}
}
