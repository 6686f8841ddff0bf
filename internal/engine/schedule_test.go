package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/maze-chase/internal/config"
)

func TestModeSchedule(t *testing.T) {
	phases := []Phase{
		{Mode: Scatter, Duration: 7 * time.Second},
		{Mode: Chase, Duration: 20 * time.Second},
		{Mode: Scatter, Duration: 5 * time.Second},
		{Mode: Chase},
	}

	t.Run("starts in the first phase", func(t *testing.T) {
		m := NewModeSchedule(phases)
		assert.Equal(t, Scatter, m.Mode())
		assert.Equal(t, 0, m.Index())
	})

	t.Run("switches at the boundary", func(t *testing.T) {
		m := NewModeSchedule(phases)
		assert.False(t, m.Advance(7*time.Second-time.Millisecond))
		assert.Equal(t, Scatter, m.Mode())
		assert.True(t, m.Advance(time.Millisecond))
		assert.Equal(t, Chase, m.Mode())
		assert.Equal(t, time.Duration(0), m.Elapsed())
	})

	t.Run("carries overflow", func(t *testing.T) {
		m := NewModeSchedule(phases)
		m.Advance(8 * time.Second)
		assert.Equal(t, 1, m.Index())
		assert.Equal(t, time.Second, m.Elapsed())
	})

	t.Run("large step crosses several phases", func(t *testing.T) {
		m := NewModeSchedule(phases)
		assert.True(t, m.Advance(29*time.Second))
		assert.Equal(t, 2, m.Index())
		assert.Equal(t, Scatter, m.Mode())
		assert.Equal(t, 2*time.Second, m.Elapsed())
	})

	t.Run("phase change with the same mode is reported", func(t *testing.T) {
		m := NewModeSchedule([]Phase{
			{Mode: Scatter, Duration: time.Second},
			{Mode: Scatter, Duration: time.Second},
			{Mode: Chase},
		})
		assert.True(t, m.Advance(time.Second))
		assert.Equal(t, 1, m.Index())
		assert.Equal(t, Scatter, m.Mode())
	})

	t.Run("last phase is sticky", func(t *testing.T) {
		m := NewModeSchedule(phases)
		m.Advance(32 * time.Second)
		assert.Equal(t, 3, m.Index())
		assert.False(t, m.Advance(time.Hour))
		assert.Equal(t, 3, m.Index())
		assert.Equal(t, Chase, m.Mode())
	})

	t.Run("reset rewinds", func(t *testing.T) {
		m := NewModeSchedule(phases)
		m.Advance(10 * time.Second)
		m.Reset()
		assert.Equal(t, 0, m.Index())
		assert.Equal(t, time.Duration(0), m.Elapsed())
		assert.Equal(t, Scatter, m.Mode())
	})

	t.Run("empty schedule chases", func(t *testing.T) {
		m := NewModeSchedule(nil)
		assert.False(t, m.Advance(time.Minute))
		assert.Equal(t, Chase, m.Mode())
	})

	t.Run("open-ended phase holds", func(t *testing.T) {
		m := NewModeSchedule([]Phase{{Mode: Scatter}, {Mode: Chase, Duration: time.Second}})
		assert.False(t, m.Advance(time.Hour))
		assert.Equal(t, Scatter, m.Mode())
	})
}

func TestPhasesFromConfig(t *testing.T) {
	phases := PhasesFromConfig([]config.PhaseConfig{
		{Mode: config.ModeScatter, MS: 7000},
		{Mode: config.ModeChase, MS: 0},
	})
	assert.Equal(t, []Phase{
		{Mode: Scatter, Duration: 7 * time.Second},
		{Mode: Chase},
	}, phases)

	def := PhasesFromConfig(config.Default().Schedule)
	assert.Equal(t, Scatter, def[0].Mode)
	assert.Equal(t, Chase, def[len(def)-1].Mode)
}

func TestPowerState(t *testing.T) {
	var p PowerState
	assert.False(t, p.Advance(time.Second))

	p.Activate(8 * time.Second)
	p.EatCombo = 2
	assert.False(t, p.Advance(5*time.Second))
	assert.Equal(t, 3*time.Second, p.Remaining)

	p.Activate(8 * time.Second)
	assert.Equal(t, 8*time.Second, p.Remaining, "reactivation restarts, does not stack")
	assert.Zero(t, p.EatCombo)

	assert.True(t, p.Advance(8*time.Second))
	assert.False(t, p.Active)
	assert.False(t, p.Advance(time.Second), "expiry reported once")
}
