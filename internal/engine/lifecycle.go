package engine

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/maze-chase/internal/config"
)

// newSession builds a fresh level-1 session in the NotStarted state.
func (e *Engine) newSession() *Session {
	s := &Session{
		ID:        uuid.New(),
		Lives:     e.cfg.Gameplay.Lives,
		Level:     1,
		State:     NotStarted,
		GhostStep: config.Millis(e.cfg.Timing.GhostStepMS),
	}
	e.s = s
	e.loadLevel()
	return s
}

// layoutFor returns the maze for a 1-based level number.
func (e *Engine) layoutFor(level int) int {
	return (level - 1) % len(e.layouts)
}

// loadLevel installs the layout for the current level and resets every
// per-level timer.
func (e *Engine) loadLevel() {
	s := e.s
	s.Maze = e.layouts[e.layoutFor(s.Level)]
	s.seedCollectibles()
	s.Schedule = NewModeSchedule(e.phases)
	s.Power.Clear()
	s.Bonus = BonusState{}
	s.readyLeft = 0
	e.resetAgents()
}

// resetAgents puts the player and ghosts back on their spawn tiles. Ghosts
// are confined and released one after another.
func (e *Engine) resetAgents() {
	s := e.s
	m := s.Maze
	tile := e.cfg.Gameplay.TileSize

	s.Player.place(m.PlayerSpawn(), tile)
	s.Player.Facing = DirRight
	s.Player.Buffered = DirNone

	for i := range s.Ghosts {
		g := &s.Ghosts[i]
		g.Personality = Personality(i)
		g.Spawn = m.GhostSpawn(i)
		g.Corner = m.ScatterCorner(i)
		g.Vulnerable = false
		g.Facing = DirUp
		g.place(g.Spawn, tile)
		g.Home = HomeState{
			Confined:  true,
			ExitDelay: config.Millis(e.cfg.Timing.ExitStaggerMS * i),
		}
	}
}

func (e *Engine) start() {
	e.s.State = Playing
	e.log.Debug("game started", "session", e.s.ID, "layout", e.s.Maze.ID())
}

// restart discards the whole session, including level speed-ups.
func (e *Engine) restart() {
	e.nameRequested = false
	e.newSession()
	e.start()
}

// nextLevel advances past a cleared level.
func (e *Engine) nextLevel() {
	s := e.s
	s.Level++
	floor := config.Millis(e.cfg.Timing.GhostStepFloorMS)
	s.GhostStep = max(floor, s.GhostStep-config.Millis(e.cfg.Timing.GhostStepDecrementMS))
	e.loadLevel()
	s.State = Playing
	e.log.Debug("level started", "level", s.Level, "layout", s.Maze.ID(), "ghost_step", s.GhostStep)
}

// checkLevelComplete flips Playing to LevelComplete once every collectible
// is gone. It can only fire from Playing, so it fires once per level.
func (e *Engine) checkLevelComplete() {
	s := e.s
	if s.State != Playing || s.remaining > 0 {
		return
	}
	s.State = LevelComplete
	s.Bonus.Active = false
	e.emit(CueLevelComplete)
	e.log.Debug("level complete", "level", s.Level, "score", s.Score)
}

func (e *Engine) gameOver() {
	s := e.s
	s.State = GameOver
	e.emit(CueGameOver)
	if s.Score > e.high.Score {
		e.nameRequested = true
	}
	e.log.Debug("game over", "score", s.Score, "level", s.Level, "high_score", e.nameRequested)
}
