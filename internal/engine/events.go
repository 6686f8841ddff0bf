package engine

import (
	"fmt"
	"strings"
)

// Cue is a fire-and-forget notification for audio or visual feedback.
type Cue uint8

const (
	CuePelletEaten Cue = iota + 1
	CuePowerActivated
	CueGhostEaten
	CueLifeLost
	CueLevelComplete
	CueGameOver
	CueBonusEaten
	CueExtraLife
)

func (c Cue) String() string {
	switch c {
	case CuePelletEaten:
		return "pellet_eaten"
	case CuePowerActivated:
		return "power_activated"
	case CueGhostEaten:
		return "ghost_eaten"
	case CueLifeLost:
		return "life_lost"
	case CueLevelComplete:
		return "level_complete"
	case CueGameOver:
		return "game_over"
	case CueBonusEaten:
		return "bonus_eaten"
	case CueExtraLife:
		return "extra_life"
	}
	return "unknown"
}

// CueSink receives cues as they happen. Implementations must not block.
type CueSink interface {
	Cue(c Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(Cue)

// Cue calls f(c).
func (f CueFunc) Cue(c Cue) { f(c) }

// CueTally is a CueSink that counts cues by kind.
type CueTally map[Cue]int

// Cue counts c.
func (t CueTally) Cue(c Cue) { t[c]++ }

// String lists the non-zero counts in cue order, e.g. "pellet_eaten=12".
func (t CueTally) String() string {
	var parts []string
	for c := CuePelletEaten; c <= CueExtraLife; c++ {
		if n := t[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", c, n))
		}
	}
	return strings.Join(parts, " ")
}

// Record is a finished game worth keeping.
type Record struct {
	Score int
	Name  string
	Level int
	RunID string
}

// Recorder persists high-score records. Failures are logged by the engine and
// otherwise ignored.
type Recorder interface {
	Record(r Record) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(Record) error

// Record calls f(r).
func (f RecorderFunc) Record(r Record) error { return f(r) }

// Result is returned by every Step.
type Result struct {
	State State
	Score int
	Cues  []Cue // cues raised during this step; valid until the next Step
}
