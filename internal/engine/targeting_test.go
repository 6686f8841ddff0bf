package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
)

func TestComputeTarget(t *testing.T) {
	h := config.Default().Heuristics
	s := bareSession(room(t))
	// player at (3,3) facing right, direct ghost at (5,5)

	tests := []struct {
		name     string
		ghost    int
		pos      core.Point
		setup    func(s *Session, g *Ghost)
		expected core.Point
	}{
		{"direct chases the player", 0, core.Pt(5, 5), nil, core.Pt(3, 3)},
		{"ambush leads by four", 1, core.Pt(1, 1), nil, core.Pt(7, 3)},
		{"ambush without facing", 1, core.Pt(1, 1), func(s *Session, _ *Ghost) { s.Player.Facing = DirNone }, core.Pt(3, 3)},
		{"pincer reflects through direct", 2, core.Pt(1, 1), nil, core.Pt(5, 1)},
		{"shy near retreats", 3, core.Pt(5, 5), nil, core.Pt(2, 5)},
		{"shy far chases", 3, core.Pt(5, 5), func(s *Session, _ *Ghost) { s.Player.Pos = core.Pt(-20, 3) }, core.Pt(-20, 3)},
		{"scatter uses corner", 0, core.Pt(5, 5), func(s *Session, _ *Ghost) {
			s.Schedule = NewModeSchedule([]Phase{{Mode: Scatter}})
		}, core.Pt(5, 0)},
		{"vulnerable flees", 1, core.Pt(4, 3), func(_ *Session, g *Ghost) { g.Vulnerable = true }, core.Pt(6, 3)},
		{"vulnerable beats scatter", 1, core.Pt(3, 1), func(s *Session, g *Ghost) {
			g.Vulnerable = true
			s.Schedule = NewModeSchedule([]Phase{{Mode: Scatter}})
		}, core.Pt(3, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := *s
			g := &s.Ghosts[tt.ghost]
			g.Pos = tt.pos
			if tt.setup != nil {
				tt.setup(&s, g)
			}
			assert.Equal(t, tt.expected, computeTarget(g, &s, h))
		})
	}
}

func TestChooseDirection(t *testing.T) {
	h := config.Default().Heuristics

	tests := []struct {
		name       string
		pos        core.Point
		facing     Direction
		vulnerable bool
		target     core.Point
		rng        fixedRand
		expected   Direction
	}{
		{"closest wins", core.Pt(2, 2), DirRight, false, core.Pt(5, 2), 0.99, DirRight},
		{"no reversal, ties by order", core.Pt(2, 2), DirRight, false, core.Pt(0, 2), 0.99, DirUp},
		{"vulnerable may reverse", core.Pt(2, 2), DirRight, true, core.Pt(0, 2), 0.99, DirLeft},
		{"flee mistake takes runner-up", core.Pt(2, 2), DirRight, true, core.Pt(0, 2), 0.0, DirUp},
		{"walls and reverse excluded", core.Pt(1, 1), DirLeft, false, core.Pt(0, 0), 0.99, DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bareSession(room(t))
			g := release(s, 0, tt.pos)
			g.Facing = tt.facing
			g.Vulnerable = tt.vulnerable
			assert.Equal(t, tt.expected, chooseDirection(g, tt.target, s, h, tt.rng))
		})
	}
}

func TestChooseDirectionDeadEnd(t *testing.T) {
	h := config.Default().Heuristics
	s := bareSession(corridor(t))

	g := release(s, 0, core.Pt(1, 1))
	g.Facing = DirUp
	assert.Equal(t, DirDown, chooseDirection(g, core.Pt(1, -5), s, h, fixedRand(0.99)))
}

func TestChooseDirectionClustering(t *testing.T) {
	h := config.Default().Heuristics
	target := core.Pt(5, 5)

	t.Run("no neighbors", func(t *testing.T) {
		s := bareSession(room(t))
		g := release(s, 0, core.Pt(2, 2))
		g.Facing = DirRight
		assert.Equal(t, DirDown, chooseDirection(g, target, s, h, fixedRand(0.99)))
	})

	t.Run("adjacent ghost", func(t *testing.T) {
		s := bareSession(room(t))
		g := release(s, 0, core.Pt(2, 2))
		g.Facing = DirRight
		release(s, 1, core.Pt(2, 4))
		assert.Equal(t, DirRight, chooseDirection(g, target, s, h, fixedRand(0.99)))
	})

	t.Run("same cell ghost", func(t *testing.T) {
		s := bareSession(room(t))
		g := release(s, 0, core.Pt(2, 2))
		g.Facing = DirRight
		release(s, 1, core.Pt(3, 2))
		assert.Equal(t, DirDown, chooseDirection(g, target, s, h, fixedRand(0.99)))
	})

	t.Run("confined ghosts ignored", func(t *testing.T) {
		s := bareSession(room(t))
		g := release(s, 0, core.Pt(2, 2))
		g.Facing = DirRight
		s.Ghosts[1].Pos = core.Pt(2, 4)
		assert.Equal(t, DirDown, chooseDirection(g, target, s, h, fixedRand(0.99)))
	})
}

func TestRandOnlyConsultedWhenFleeing(t *testing.T) {
	h := config.Default().Heuristics
	s := bareSession(room(t))
	g := release(s, 0, core.Pt(2, 2))
	g.Facing = DirRight

	calls := 0
	rng := countingRand{calls: &calls}
	chooseDirection(g, core.Pt(0, 0), s, h, rng)
	assert.Equal(t, 0, calls)

	g.Vulnerable = true
	chooseDirection(g, core.Pt(0, 0), s, h, rng)
	assert.Equal(t, 1, calls)
}

type countingRand struct{ calls *int }

func (r countingRand) Float64() float64 {
	*r.calls++
	return 0.5
}

func TestStaggeredHomeExit(t *testing.T) {
	e, err := New(builtin(t), testConfig())
	require.NoError(t, err)
	s := e.Session()
	step := config.Millis(e.cfg.Timing.GhostStepMS)

	released := make([]int, len(s.Ghosts))
	for k := 1; k <= 60; k++ {
		for i := range s.Ghosts {
			e.moveGhost(i, step)
			if released[i] == 0 && s.Ghosts[i].Active() {
				released[i] = k
				assert.Equal(t, s.Maze.HomeExit(), s.Ghosts[i].Pos, "ghost %d leaves through the exit", i)
			}
		}
	}

	assert.Equal(t, []int{1, 20, 38, 54}, released)
}

func TestLeaveHomeColumnFirst(t *testing.T) {
	e, err := New(builtin(t), testConfig())
	require.NoError(t, err)
	g := &e.Session().Ghosts[2]
	require.Equal(t, core.Pt(12, 14), g.Pos)
	g.Home.ExitTimer = g.Home.ExitDelay

	interval := 180 * time.Millisecond
	path := []core.Point{}
	for g.Home.Confined {
		e.leaveHome(g, interval)
		path = append(path, g.Pos)
	}
	assert.Equal(t, []core.Point{
		core.Pt(13, 14), core.Pt(13, 13), core.Pt(13, 12), core.Pt(13, 11),
	}, path)
	assert.Equal(t, DirUp, g.Facing)
}
