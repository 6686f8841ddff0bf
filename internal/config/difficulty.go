package config

import (
	"fmt"
	"strings"
)

// ParsePreset maps a flag value to a preset. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
//
//	easy:   +2 lives, ghosts 30ms slower, power lasts 2s longer
//	normal: unchanged
//	hard:   -1 life, ghosts 30ms faster, power 3s shorter
//	fixed:  ghosts never speed up between levels
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	t := &cfg.Timing
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives += 2
		t.GhostStepMS += 30
		t.PowerMS += 2000
	case DifficultyHard:
		cfg.Gameplay.Lives = max(1, cfg.Gameplay.Lives-1)
		t.GhostStepMS = max(t.GhostStepFloorMS, t.GhostStepMS-30)
		t.PowerMS = max(1000, t.PowerMS-3000)
	}
	if IsFixedPreset(preset) {
		t.GhostStepDecrementMS = 0
	}
}
