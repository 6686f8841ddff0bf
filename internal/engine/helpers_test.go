package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

const (
	playerTick = 120 * time.Millisecond
	instant    = time.Millisecond // shorter than any step interval
)

// testConfig is the default config without the timers that get in the way
// of single-tick assertions.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Timing.ReadyMS = 0
	cfg.Scoring.ExtraLifeAt = 0
	cfg.Bonus.After = nil
	return cfg
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func builtin(t *testing.T) []*maze.Maze {
	t.Helper()
	mazes, err := maze.Builtin()
	require.NoError(t, err)
	return mazes
}

// newStarted returns an engine on the built-in layouts that is already Playing.
func newStarted(t *testing.T, cfg config.Config, opts ...Option) *Engine {
	t.Helper()
	e, err := New(builtin(t), cfg, opts...)
	require.NoError(t, err)
	e.Step(0, frame(core.ActionStart))
	require.Equal(t, Playing, e.Session().State)
	return e
}

// eatAllBut marks every collectible eaten except the one at keep.
func eatAllBut(s *Session, keep core.Point) {
	for i := range s.Collectibles {
		if s.Collectibles[i].Pos != keep {
			s.Collectibles[i].Eaten = true
		}
	}
	s.remaining = 1
}

// release frees ghost i at p.
func release(s *Session, i int, p core.Point) *Ghost {
	g := &s.Ghosts[i]
	g.Pos = p
	g.Home.Confined = false
	return g
}

func hasCue(cues []Cue, c Cue) bool {
	for _, x := range cues {
		if x == c {
			return true
		}
	}
	return false
}

func countCue(cues []Cue, c Cue) int {
	n := 0
	for _, x := range cues {
		if x == c {
			n++
		}
	}
	return n
}

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// room is an open 5x5 field used by the targeting tests.
func room(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(maze.Layout{
		ID:     "room",
		Home:   maze.RectSpec{X: 5, Y: 5, W: 1, H: 1},
		Exit:   maze.PointSpec{X: 5, Y: 4},
		Ghosts: []maze.PointSpec{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}},
		Grid: []string{
			"#######",
			"#.....#",
			"#.....#",
			"#..P..#",
			"#.....#",
			"#.....#",
			"#######",
		},
	})
	require.NoError(t, err)
	return m
}

// corridor has a one-tile dead end at (1,1).
func corridor(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(maze.Layout{
		ID:     "corridor",
		Home:   maze.RectSpec{X: 5, Y: 3, W: 1, H: 1},
		Exit:   maze.PointSpec{X: 5, Y: 2},
		Ghosts: []maze.PointSpec{{X: 5, Y: 3}, {X: 5, Y: 3}, {X: 5, Y: 3}, {X: 5, Y: 3}},
		Grid: []string{
			"#######",
			"#.###.#",
			"#.....#",
			"#.#P#.#",
			"#######",
		},
	})
	require.NoError(t, err)
	return m
}

// bareSession is a session on m with every ghost confined, for unit tests of
// the steering functions.
func bareSession(m *maze.Maze) *Session {
	s := &Session{Maze: m}
	s.Player.Pos = m.PlayerSpawn()
	s.Player.Facing = DirRight
	for i := range s.Ghosts {
		g := &s.Ghosts[i]
		g.Personality = Personality(i)
		g.Pos = m.GhostSpawn(i)
		g.Corner = m.ScatterCorner(i)
		g.Home.Confined = true
	}
	s.Schedule = NewModeSchedule([]Phase{{Mode: Chase}})
	return s
}
