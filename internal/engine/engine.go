// Package engine is the maze-chase simulation: a deterministic per-tick
// state machine covering movement, ghost targeting, scatter/chase/power
// scheduling, collision scoring and the level lifecycle.
//
// An Engine owns exactly one Session and is advanced only by Step. All
// timers are accumulators fed by the step delta, so the same layouts,
// config, seed and input sequence always produce the same states.
// An Engine is not safe for concurrent use.
package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

var (
	ErrNoLayouts       = errors.New("engine: no layouts")
	ErrNoNameRequested = errors.New("engine: no high score awaiting a name")
	ErrInvalidName     = errors.New("engine: name must be exactly 3 letters")
)

// NameLength is the number of letters in a high-score name.
const NameLength = 3

// Engine drives one game session.
type Engine struct {
	cfg     config.Config
	phases  []Phase
	layouts []*maze.Maze

	rng      Rand
	log      *log.Logger
	sink     CueSink
	recorder Recorder

	high          Record
	nameRequested bool

	s    *Session
	cues []Cue
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for flee mistakes.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) } //nolint:gosec // gameplay randomness
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithCueSink sets where cues are delivered as they happen.
func WithCueSink(sink CueSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithHighScore seeds the high score shown before any game ends.
func WithHighScore(r Record) Option {
	return func(e *Engine) { e.high = r }
}

// WithRecorder sets where new high scores are persisted.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// New creates an engine over an ordered list of layouts. Level N plays
// layouts[(N-1) mod len(layouts)].
func New(layouts []*maze.Maze, cfg config.Config, opts ...Option) (*Engine, error) {
	if len(layouts) == 0 {
		return nil, ErrNoLayouts
	}
	for i, m := range layouts {
		if m == nil {
			return nil, fmt.Errorf("engine: layout %d is nil: %w", i, ErrNoLayouts)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Engine{
		cfg:     cfg,
		phases:  PhasesFromConfig(cfg.Schedule),
		layouts: layouts,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(1)) //nolint:gosec // gameplay randomness
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}

	e.newSession()
	return e, nil
}

// Step advances the simulation by dt with the actions of one input frame.
func (e *Engine) Step(dt time.Duration, in core.InputFrame) Result {
	e.cues = e.cues[:0]
	s := e.s
	s.Tick++

	if d := DirectionOf(in.Direction()); d != DirNone {
		s.Player.Buffered = d
	}

	switch s.State {
	case NotStarted:
		if in.Has(core.ActionStart) {
			e.start()
		}
	case GameOver:
		if in.Has(core.ActionRestart) {
			e.restart()
		}
	case LevelComplete:
		if in.Has(core.ActionContinue) {
			e.nextLevel()
		}
	case Ready, Playing:
		if in.Has(core.ActionPause) {
			s.Paused = !s.Paused
		}
		if s.Paused {
			break
		}
		if s.State == Ready {
			e.ready(dt)
		} else {
			e.tick(dt)
		}
	}

	return Result{State: e.s.State, Score: e.s.Score, Cues: e.cues}
}

func (e *Engine) ready(dt time.Duration) {
	s := e.s
	s.readyLeft -= dt
	if s.readyLeft <= 0 {
		s.readyLeft = 0
		s.State = Playing
	}
}

// tick runs one Playing update: timers, movement, resolution, lifecycle.
func (e *Engine) tick(dt time.Duration) {
	s := e.s

	if s.Power.Active {
		if s.Power.Advance(dt) {
			e.expirePower()
		}
	} else if s.Schedule.Advance(dt) {
		e.log.Debug("phase changed", "mode", s.Schedule.Mode(), "phase", s.Schedule.Index())
	}

	if s.Bonus.Active {
		s.Bonus.Remaining -= dt
		if s.Bonus.Remaining <= 0 {
			s.Bonus.Active = false
			s.Bonus.Remaining = 0
		}
	}

	// finish the previous glides before new steps retarget them
	s.Player.animate(dt)
	for i := range s.Ghosts {
		s.Ghosts[i].animate(dt)
	}

	before := e.positions()
	e.movePlayer(dt)
	for i := range s.Ghosts {
		e.moveGhost(i, dt)
	}

	if !e.resolve(before) {
		return
	}
	e.checkLevelComplete()
}

func (e *Engine) emit(c Cue) {
	e.cues = append(e.cues, c)
	if e.sink != nil {
		e.sink.Cue(c)
	}
}

// Session exposes the live session for inspection. Callers must not mutate it.
func (e *Engine) Session() *Session { return e.s }

// HighScore returns the current high-score record.
func (e *Engine) HighScore() Record { return e.high }

// NameRequested reports whether the finished game beat the high score and
// awaits SubmitName.
func (e *Engine) NameRequested() bool { return e.nameRequested }

// SubmitName stores the name for a pending high score. The name must be
// exactly three letters; it is upper-cased. Recorder failures are logged and
// do not affect the engine.
func (e *Engine) SubmitName(name string) error {
	if !e.nameRequested {
		return ErrNoNameRequested
	}
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) != NameLength {
		return ErrInvalidName
	}
	for _, r := range name {
		if r < 'A' || r > 'Z' {
			return ErrInvalidName
		}
	}

	s := e.s
	e.high = Record{Score: s.Score, Name: name, Level: s.Level, RunID: s.ID.String()}
	e.nameRequested = false

	if e.recorder != nil {
		if err := e.recorder.Record(e.high); err != nil {
			e.log.Warn("failed to record high score", "err", err, "score", e.high.Score)
		}
	}
	return nil
}
