package engine

import (
	"time"

	"github.com/vovakirdan/maze-chase/internal/config"
)

// Mode is the global ghost behavior outside power mode.
type Mode uint8

const (
	Scatter Mode = iota
	Chase
)

func (m Mode) String() string {
	if m == Scatter {
		return "scatter"
	}
	return "chase"
}

// Phase is one entry of the scatter/chase sequence. A non-positive Duration
// never ends.
type Phase struct {
	Mode     Mode
	Duration time.Duration
}

// ModeSchedule walks a fixed phase sequence. Once the last phase is reached
// it is kept for the rest of the level.
type ModeSchedule struct {
	phases  []Phase
	index   int
	elapsed time.Duration
}

// NewModeSchedule creates a schedule positioned at the first phase.
func NewModeSchedule(phases []Phase) ModeSchedule {
	return ModeSchedule{phases: phases}
}

// PhasesFromConfig converts configured phases.
func PhasesFromConfig(cfg []config.PhaseConfig) []Phase {
	phases := make([]Phase, len(cfg))
	for i, p := range cfg {
		mode := Chase
		if p.Mode == config.ModeScatter {
			mode = Scatter
		}
		phases[i] = Phase{Mode: mode, Duration: config.Millis(p.MS)}
	}
	return phases
}

// Advance adds dt to the current phase and reports whether the phase changed.
func (m *ModeSchedule) Advance(dt time.Duration) bool {
	if len(m.phases) == 0 {
		return false
	}
	before := m.index
	m.elapsed += dt
	for m.index < len(m.phases)-1 {
		d := m.phases[m.index].Duration
		if d <= 0 || m.elapsed < d {
			break
		}
		m.elapsed -= d
		m.index++
	}
	return m.index != before
}

// Mode returns the active phase's mode. An empty schedule always chases.
func (m *ModeSchedule) Mode() Mode {
	if len(m.phases) == 0 {
		return Chase
	}
	return m.phases[m.index].Mode
}

// Index returns the position in the phase list.
func (m *ModeSchedule) Index() int { return m.index }

// Elapsed returns the time spent in the current phase.
func (m *ModeSchedule) Elapsed() time.Duration { return m.elapsed }

// Reset rewinds to the first phase.
func (m *ModeSchedule) Reset() {
	m.index = 0
	m.elapsed = 0
}

// PowerState is the frightened window opened by a power pellet.
type PowerState struct {
	Active    bool
	Remaining time.Duration
	EatCombo  int
}

// Activate (re)starts the countdown at full length. Repeated activation
// does not stack.
func (p *PowerState) Activate(d time.Duration) {
	p.Active = true
	p.Remaining = d
	p.EatCombo = 0
}

// Advance runs the countdown and reports whether it expired during dt.
func (p *PowerState) Advance(dt time.Duration) bool {
	if !p.Active {
		return false
	}
	p.Remaining -= dt
	if p.Remaining > 0 {
		return false
	}
	p.Clear()
	return true
}

// Clear ends power mode immediately.
func (p *PowerState) Clear() {
	p.Active = false
	p.Remaining = 0
	p.EatCombo = 0
}
