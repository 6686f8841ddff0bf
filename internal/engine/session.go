package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// State is the session lifecycle state.
type State uint8

const (
	NotStarted State = iota
	Ready
	Playing
	LevelComplete
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case LevelComplete:
		return "level_complete"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Collectible is a pellet or power pellet placed at level load.
type Collectible struct {
	Pos   core.Point
	Kind  maze.Cell
	Eaten bool
}

// BonusState tracks the timed bonus item of the current level.
type BonusState struct {
	Active    bool
	Pos       core.Point
	Remaining time.Duration
	Spawned   int // bonus items shown this level
}

// Session is the complete mutable state of one game. It is owned by a single
// Engine and never shared.
type Session struct {
	ID     uuid.UUID
	Tick   uint64
	Score  int
	Lives  int
	Level  int
	State  State
	Paused bool

	Maze         *maze.Maze
	Collectibles []Collectible
	remaining    int
	eaten        int // collectibles eaten this level
	byPos        map[core.Point]int

	Player   Player
	Ghosts   [maze.GhostCount]Ghost
	Schedule ModeSchedule
	Power    PowerState
	Bonus    BonusState

	GhostStep time.Duration // normal ghost interval; shrinks per level
	readyLeft time.Duration
	extraLife bool          // extra life already awarded this game
}

// Remaining returns how many collectibles are still uneaten.
func (s *Session) Remaining() int { return s.remaining }

// collectibleAt returns the index of the collectible on p, or -1.
func (s *Session) collectibleAt(p core.Point) int {
	if i, ok := s.byPos[p]; ok {
		return i
	}
	return -1
}

// directGhost returns the ghost using the direct personality.
func (s *Session) directGhost() *Ghost {
	for i := range s.Ghosts {
		if s.Ghosts[i].Personality == Direct {
			return &s.Ghosts[i]
		}
	}
	return &s.Ghosts[0]
}

// seedCollectibles rebuilds the collectible list from the maze.
func (s *Session) seedCollectibles() {
	items := s.Maze.Collectibles()
	s.Collectibles = make([]Collectible, len(items))
	s.byPos = make(map[core.Point]int, len(items))
	for i, it := range items {
		s.Collectibles[i] = Collectible{Pos: it.Pos, Kind: it.Kind}
		s.byPos[it.Pos] = i
	}
	s.remaining = len(items)
	s.eaten = 0
}
