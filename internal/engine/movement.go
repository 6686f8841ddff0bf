package engine

import (
	"time"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
)

// playerStep returns the cell one step from p in direction d, with
// horizontal wrap applied. ok is false for walls, the ghost home and
// edges that do not wrap.
func playerStep(s *Session, p core.Point, d Direction) (core.Point, bool) {
	next, ok := ghostStep(s, p, d)
	if !ok || s.Maze.IsRestrictedZone(next.X, next.Y) {
		return p, false
	}
	return next, true
}

// ghostStep is playerStep without the home restriction.
func ghostStep(s *Session, p core.Point, d Direction) (core.Point, bool) {
	if d == DirNone {
		return p, false
	}
	next := p.Add(d.Delta())
	if s.Maze.IsWall(next.X, next.Y) {
		return p, false
	}
	return s.Maze.Wrap(next)
}

// movePlayer attempts one player step if the interval has elapsed.
func (e *Engine) movePlayer(dt time.Duration) {
	s := e.s
	p := &s.Player
	interval := config.Millis(e.cfg.Timing.PlayerStepMS)
	if !p.due(dt, interval) {
		return
	}

	if _, ok := playerStep(s, p.Pos, p.Buffered); ok {
		p.Facing = p.Buffered
	}

	next, ok := playerStep(s, p.Pos, p.Facing)
	if !ok {
		return
	}
	e.advance(&p.Agent, next, interval)
}

// moveGhost attempts one step of ghost i if its interval has elapsed.
func (e *Engine) moveGhost(i int, dt time.Duration) {
	s := e.s
	g := &s.Ghosts[i]
	interval := e.ghostInterval(g)
	if !g.due(dt, interval) {
		return
	}

	if g.Home.Confined {
		e.leaveHome(g, interval)
		return
	}

	target := computeTarget(g, s, e.cfg.Heuristics)
	dir := chooseDirection(g, target, s, e.cfg.Heuristics, e.rng)
	if dir == DirNone {
		return
	}
	g.Facing = dir
	if next, ok := ghostStep(s, g.Pos, dir); ok {
		e.advance(&g.Agent, next, interval)
	}
}

// leaveHome walks a confined ghost toward the home exit once its delay has
// passed: column first, then row, ignoring walls so it can pass the door.
func (e *Engine) leaveHome(g *Ghost, interval time.Duration) {
	h := &g.Home
	if h.ExitTimer < h.ExitDelay {
		h.ExitTimer += interval
		return
	}

	exit := e.s.Maze.HomeExit()
	if g.Pos == exit {
		h.Confined = false
		return
	}

	var d Direction
	switch {
	case g.Pos.X < exit.X:
		d = DirRight
	case g.Pos.X > exit.X:
		d = DirLeft
	case g.Pos.Y < exit.Y:
		d = DirDown
	default:
		d = DirUp
	}
	g.Facing = d
	e.advance(&g.Agent, g.Pos.Add(d.Delta()), interval)
	if g.Pos == exit {
		h.Confined = false
	}
}

// advance commits a successful step and starts the pixel glide. Steps that
// wrap across the maze snap instead of gliding.
func (e *Engine) advance(a *Agent, next core.Point, interval time.Duration) {
	wrapped := core.Abs(next.X-a.Pos.X) > 1
	a.Pos = next
	if wrapped {
		a.snap(e.cfg.Gameplay.TileSize)
		return
	}
	a.glide(e.cfg.Gameplay.TileSize, interval)
}

func (e *Engine) ghostInterval(g *Ghost) time.Duration {
	if g.Vulnerable {
		return e.s.GhostStep + config.Millis(e.cfg.Timing.VulnerableExtraMS)
	}
	return e.s.GhostStep
}
