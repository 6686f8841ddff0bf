package engine

import (
	"time"

	"github.com/vovakirdan/maze-chase/internal/maze"
)

// AgentView is the rendered state of one agent.
type AgentView struct {
	X, Y           int
	PixelX, PixelY float32
	Facing         Direction
}

// GhostView adds ghost-only flags.
type GhostView struct {
	AgentView
	Personality Personality
	Vulnerable  bool
	Confined    bool
}

// BonusView describes the bonus item, if shown.
type BonusView struct {
	Active bool
	X, Y   int
	Points int
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	SessionID string
	Tick      uint64
	State     State
	Paused    bool

	Level    int
	LayoutID string
	Maze     *maze.Maze // immutable, shared
	Score    int
	Lives    int

	Mode           Mode
	PowerActive    bool
	PowerRemaining time.Duration
	EatCombo       int

	TileSize     int // pixel size of one cell
	Player       AgentView
	Ghosts       [maze.GhostCount]GhostView
	Collectibles []Collectible
	Remaining    int
	Bonus        BonusView

	HighScore     Record
	NameRequested bool
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	s := e.s
	snap := Snapshot{
		SessionID:      s.ID.String(),
		Tick:           s.Tick,
		State:          s.State,
		Paused:         s.Paused,
		Level:          s.Level,
		LayoutID:       s.Maze.ID(),
		Maze:           s.Maze,
		Score:          s.Score,
		Lives:          s.Lives,
		Mode:           s.Schedule.Mode(),
		PowerActive:    s.Power.Active,
		PowerRemaining: s.Power.Remaining,
		EatCombo:       s.Power.EatCombo,
		TileSize:       e.cfg.Gameplay.TileSize,
		Player:         viewOf(&s.Player.Agent),
		Collectibles:   append([]Collectible(nil), s.Collectibles...),
		Remaining:      s.remaining,
		Bonus: BonusView{
			Active: s.Bonus.Active,
			X:      s.Bonus.Pos.X,
			Y:      s.Bonus.Pos.Y,
			Points: e.bonusValue() * e.cfg.Scoring.Multiplier,
		},
		HighScore:     e.high,
		NameRequested: e.nameRequested,
	}
	for i := range s.Ghosts {
		g := &s.Ghosts[i]
		snap.Ghosts[i] = GhostView{
			AgentView:   viewOf(&g.Agent),
			Personality: g.Personality,
			Vulnerable:  g.Vulnerable,
			Confined:    g.Home.Confined,
		}
	}
	return snap
}

func viewOf(a *Agent) AgentView {
	px, py := a.Pixel()
	return AgentView{X: a.Pos.X, Y: a.Pos.Y, PixelX: px, PixelY: py, Facing: a.Facing}
}
