package engine

import (
	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// positions captures where agents stood before this tick's movement.
type positions struct {
	player core.Point
	ghosts [maze.GhostCount]core.Point
}

func (e *Engine) positions() positions {
	p := positions{player: e.s.Player.Pos}
	for i := range e.s.Ghosts {
		p.ghosts[i] = e.s.Ghosts[i].Pos
	}
	return p
}

// resolve applies the consequences of this tick's movement. It reports false
// when a life was lost and the remainder of the tick must be skipped.
func (e *Engine) resolve(before positions) bool {
	e.eatCollectible()
	e.eatBonus()
	if !e.resolveGhosts(before) {
		return false
	}
	e.checkExtraLife()
	return true
}

func (e *Engine) award(points int) {
	e.s.Score += points * e.cfg.Scoring.Multiplier
}

func (e *Engine) eatCollectible() {
	s := e.s
	i := s.collectibleAt(s.Player.Pos)
	if i < 0 || s.Collectibles[i].Eaten {
		return
	}

	c := &s.Collectibles[i]
	c.Eaten = true
	s.remaining--
	s.eaten++

	if c.Kind == maze.PowerPellet {
		e.award(e.cfg.Scoring.PowerPellet)
		e.activatePower()
	} else {
		e.award(e.cfg.Scoring.Pellet)
		e.emit(CuePelletEaten)
	}

	e.maybeSpawnBonus()
}

// activatePower frightens every ghost and restarts the countdown.
func (e *Engine) activatePower() {
	s := e.s
	s.Power.Activate(config.Millis(e.cfg.Timing.PowerMS))
	for i := range s.Ghosts {
		s.Ghosts[i].Vulnerable = true
	}
	e.emit(CuePowerActivated)
}

func (e *Engine) expirePower() {
	s := e.s
	s.Power.Clear()
	for i := range s.Ghosts {
		s.Ghosts[i].Vulnerable = false
	}
}

func (e *Engine) maybeSpawnBonus() {
	s := e.s
	after := e.cfg.Bonus.After
	if s.Bonus.Active || s.Bonus.Spawned >= len(after) || s.eaten < after[s.Bonus.Spawned] {
		return
	}
	s.Bonus.Spawned++
	s.Bonus.Active = true
	s.Bonus.Pos = s.Maze.BonusTile()
	s.Bonus.Remaining = config.Millis(e.cfg.Timing.BonusMS)
	e.log.Debug("bonus spawned", "level", s.Level, "x", s.Bonus.Pos.X, "y", s.Bonus.Pos.Y)
}

func (e *Engine) bonusValue() int {
	return e.cfg.Scoring.Bonus * e.s.Level
}

func (e *Engine) eatBonus() {
	s := e.s
	if !s.Bonus.Active || s.Bonus.Pos != s.Player.Pos {
		return
	}
	s.Bonus.Active = false
	s.Bonus.Remaining = 0
	e.award(e.bonusValue())
	e.emit(CueBonusEaten)
}

// resolveGhosts handles player-ghost contact: sharing a cell, or swapping
// cells during this tick.
func (e *Engine) resolveGhosts(before positions) bool {
	s := e.s
	for i := range s.Ghosts {
		g := &s.Ghosts[i]
		same := g.Pos == s.Player.Pos
		swapped := g.Pos == before.player && before.ghosts[i] == s.Player.Pos
		if !same && !swapped {
			continue
		}

		if g.Vulnerable {
			e.eatGhost(g)
			continue
		}

		e.loseLife()
		return false
	}
	return true
}

func (e *Engine) eatGhost(g *Ghost) {
	s := e.s
	s.Power.EatCombo++
	e.award(e.cfg.Scoring.GhostBase * s.Power.EatCombo)

	g.Vulnerable = false
	g.Facing = DirUp
	g.place(g.Spawn, e.cfg.Gameplay.TileSize)
	g.Home = HomeState{
		Confined:  true,
		ExitDelay: config.Millis(e.cfg.Timing.ReentryMS),
	}
	e.emit(CueGhostEaten)
	e.log.Debug("ghost eaten", "ghost", g.Personality, "combo", s.Power.EatCombo)
}

// loseLife ends the game or puts the level back to its starting positions.
func (e *Engine) loseLife() {
	s := e.s
	s.Lives--
	e.emit(CueLifeLost)

	if s.Lives <= 0 {
		s.Lives = 0
		e.gameOver()
		return
	}

	e.expirePower()
	e.resetAgents()
	s.Bonus.Active = false
	s.State = Ready
	s.readyLeft = config.Millis(e.cfg.Timing.ReadyMS)
	e.log.Debug("life lost", "lives", s.Lives, "level", s.Level)
}

func (e *Engine) checkExtraLife() {
	s := e.s
	at := e.cfg.Scoring.ExtraLifeAt
	if at <= 0 || s.extraLife || s.Score < at {
		return
	}
	s.extraLife = true
	s.Lives++
	e.emit(CueExtraLife)
}
