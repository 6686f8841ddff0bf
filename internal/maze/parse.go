package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Layout errors. Parse wraps them with the offending detail.
var (
	ErrEmptyLayout      = errors.New("maze: empty layout")
	ErrRaggedRows       = errors.New("maze: rows differ in width")
	ErrUnknownMarker    = errors.New("maze: unknown grid marker")
	ErrNoPlayerSpawn    = errors.New("maze: no player spawn")
	ErrMultiplePlayers  = errors.New("maze: more than one player spawn")
	ErrGhostSpawns      = errors.New("maze: invalid ghost spawns")
	ErrHomeOutOfBounds  = errors.New("maze: home rectangle outside grid")
	ErrBlockedTile      = errors.New("maze: tile is a wall or outside grid")
	ErrNoCollectibles   = errors.New("maze: layout has no pellets")
	ErrMissingID        = errors.New("maze: layout has no id")
	ErrInvalidCornerSet = errors.New("maze: corners must list one tile per ghost")
)

// Layout is the authoring form of a maze, as stored in YAML level files.
type Layout struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Home    RectSpec    `yaml:"home"`
	Exit    PointSpec   `yaml:"exit"`
	Ghosts  []PointSpec `yaml:"ghosts"`
	Bonus   *PointSpec  `yaml:"bonus,omitempty"`
	Corners []PointSpec `yaml:"corners,omitempty"`
	Grid    []string    `yaml:"grid"`
}

// PointSpec is a tile coordinate in a layout file.
type PointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RectSpec is a rectangle in a layout file.
type RectSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

func (p PointSpec) point() core.Point { return core.Pt(p.X, p.Y) }

// Grid markers.
const (
	markWall   = '#'
	markPath   = ' '
	markPellet = '.'
	markPower  = 'o'
	markPlayer = 'P'
	markDoor   = '-'
)

// Parse validates a layout and builds the immutable Maze.
func Parse(l Layout) (*Maze, error) {
	if l.ID == "" {
		return nil, ErrMissingID
	}
	if len(l.Grid) == 0 || len([]rune(l.Grid[0])) == 0 {
		return nil, fmt.Errorf("%s: %w", l.ID, ErrEmptyLayout)
	}

	width := len([]rune(l.Grid[0]))
	m := &Maze{
		id:     l.ID,
		name:   l.Name,
		width:  width,
		height: len(l.Grid),
		cells:  make([][]Cell, len(l.Grid)),
	}
	if m.name == "" {
		m.name = l.ID
	}

	players := 0
	for y, line := range l.Grid {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("%s: row %d has %d columns, expected %d: %w", l.ID, y, len(runes), width, ErrRaggedRows)
		}
		m.cells[y] = make([]Cell, width)
		for x, r := range runes {
			switch r {
			case markWall:
				m.cells[y][x] = Wall
			case markPath:
				m.cells[y][x] = Path
			case markPellet:
				m.cells[y][x] = Pellet
			case markPower:
				m.cells[y][x] = PowerPellet
			case markPlayer:
				m.cells[y][x] = Path
				m.player = core.Pt(x, y)
				players++
			case markDoor:
				m.cells[y][x] = Path
				m.door = append(m.door, core.Pt(x, y))
			default:
				return nil, fmt.Errorf("%s: %q at (%d,%d): %w", l.ID, r, x, y, ErrUnknownMarker)
			}
		}
	}

	switch {
	case players == 0:
		return nil, fmt.Errorf("%s: %w", l.ID, ErrNoPlayerSpawn)
	case players > 1:
		return nil, fmt.Errorf("%s: found %d: %w", l.ID, players, ErrMultiplePlayers)
	}

	m.home = core.NewRect(l.Home.X, l.Home.Y, l.Home.W, l.Home.H)
	if m.home.Empty() || !m.inBounds(m.home.X, m.home.Y) || !m.inBounds(m.home.Right()-1, m.home.Bottom()-1) {
		return nil, fmt.Errorf("%s: %+v: %w", l.ID, l.Home, ErrHomeOutOfBounds)
	}
	if m.home.Contains(m.player.X, m.player.Y) {
		return nil, fmt.Errorf("%s: player spawn inside ghost home: %w", l.ID, ErrBlockedTile)
	}

	if len(l.Ghosts) != GhostCount {
		return nil, fmt.Errorf("%s: got %d, expected %d: %w", l.ID, len(l.Ghosts), GhostCount, ErrGhostSpawns)
	}
	for i, g := range l.Ghosts {
		if m.At(g.X, g.Y) == Wall {
			return nil, fmt.Errorf("%s: ghost %d at (%d,%d): %w", l.ID, i, g.X, g.Y, ErrGhostSpawns)
		}
		m.ghosts[i] = g.point()
	}

	m.exit = l.Exit.point()
	if m.At(m.exit.X, m.exit.Y) == Wall {
		return nil, fmt.Errorf("%s: home exit (%d,%d): %w", l.ID, m.exit.X, m.exit.Y, ErrBlockedTile)
	}

	m.bonus = m.player
	if l.Bonus != nil {
		m.bonus = l.Bonus.point()
		if m.At(m.bonus.X, m.bonus.Y) == Wall || m.home.Contains(m.bonus.X, m.bonus.Y) {
			return nil, fmt.Errorf("%s: bonus tile (%d,%d): %w", l.ID, m.bonus.X, m.bonus.Y, ErrBlockedTile)
		}
	}

	switch len(l.Corners) {
	case 0:
		m.corners = defaultCorners(m.width, m.height)
	case GhostCount:
		for i, c := range l.Corners {
			m.corners[i] = c.point()
		}
	default:
		return nil, fmt.Errorf("%s: got %d: %w", l.ID, len(l.Corners), ErrInvalidCornerSet)
	}

	if len(m.Collectibles()) == 0 {
		return nil, fmt.Errorf("%s: %w", l.ID, ErrNoCollectibles)
	}

	return m, nil
}

// defaultCorners places scatter targets near the four corners, in ghost order.
// Targets may be walls; they are only compared by distance.
func defaultCorners(w, h int) [GhostCount]core.Point {
	return [GhostCount]core.Point{
		core.Pt(w-2, 0),
		core.Pt(2, 0),
		core.Pt(w-2, h-2),
		core.Pt(2, h-2),
	}
}
