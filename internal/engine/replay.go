package engine

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// ErrBadScript is wrapped by script parse failures.
var ErrBadScript = errors.New("engine: bad replay script")

// Script is a headless input recording: actions keyed by tick number.
//
//	seed: 7
//	tick_ms: 20
//	ticks: 600
//	events:
//	  - {tick: 0, action: start}
//	  - {tick: 40, action: up}
type Script struct {
	Seed   int64         `yaml:"seed"`
	TickMS int           `yaml:"tick_ms"`
	Ticks  int           `yaml:"ticks"`
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent fires one action on one tick.
type ScriptEvent struct {
	Tick   int    `yaml:"tick"`
	Action string `yaml:"action"`
}

// ParseScript decodes and checks a replay script. A zero tick_ms defaults to
// 1000/60 ms; a zero tick count runs one tick past the last event.
func ParseScript(data []byte) (Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Script{}, fmt.Errorf("%w: %w", ErrBadScript, err)
	}
	if sc.TickMS < 0 || sc.Ticks < 0 {
		return Script{}, fmt.Errorf("%w: negative tick_ms or ticks", ErrBadScript)
	}
	last := -1
	for i, ev := range sc.Events {
		if _, ok := core.ParseAction(ev.Action); !ok {
			return Script{}, fmt.Errorf("%w: event %d: unknown action %q", ErrBadScript, i, ev.Action)
		}
		if ev.Tick < 0 {
			return Script{}, fmt.Errorf("%w: event %d: negative tick", ErrBadScript, i)
		}
		last = max(last, ev.Tick)
	}
	if sc.Ticks == 0 {
		sc.Ticks = last + 1
	}
	return sc, nil
}

// Delta returns the per-tick time step.
func (sc Script) Delta() time.Duration {
	if sc.TickMS <= 0 {
		return time.Second / 60
	}
	return time.Duration(sc.TickMS) * time.Millisecond
}

// Frames expands the events into one input frame per tick.
func (sc Script) Frames() []core.InputFrame {
	frames := make([]core.InputFrame, sc.Ticks)
	for i := range frames {
		frames[i] = core.NewInputFrame()
	}
	for _, ev := range sc.Events {
		if ev.Tick >= len(frames) {
			continue
		}
		a, _ := core.ParseAction(ev.Action)
		frames[ev.Tick].Set(a)
	}
	return frames
}

// Run feeds the script to e and returns the final snapshot. A quit action
// stops the run early.
func (sc Script) Run(e *Engine) Snapshot {
	dt := sc.Delta()
	for _, in := range sc.Frames() {
		if in.Has(core.ActionQuit) {
			break
		}
		e.Step(dt, in)
	}
	return e.Snapshot()
}
