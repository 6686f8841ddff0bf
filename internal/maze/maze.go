// Package maze holds the static level model: the tile grid, the ghost home
// rectangle, spawn tiles and scatter corners. A Maze is immutable once parsed
// and safe to share between engines.
package maze

import (
	"github.com/vovakirdan/maze-chase/internal/core"
)

// GhostCount is the number of ghosts every layout must place.
const GhostCount = 4

// Cell is the static content of one grid tile.
type Cell uint8

const (
	Wall Cell = iota
	Path
	Pellet
	PowerPellet
)

// String returns the layout marker for the cell.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "#"
	case Pellet:
		return "."
	case PowerPellet:
		return "o"
	default:
		return " "
	}
}

// IsCollectible reports whether the cell starts a level holding something to eat.
func (c Cell) IsCollectible() bool {
	return c == Pellet || c == PowerPellet
}

// Maze is a parsed, validated level.
type Maze struct {
	id     string
	name   string
	width  int
	height int
	cells  [][]Cell

	home    core.Rect
	exit    core.Point
	player  core.Point
	ghosts  [GhostCount]core.Point
	corners [GhostCount]core.Point
	bonus   core.Point
	door    []core.Point
}

// ID returns the layout identifier.
func (m *Maze) ID() string { return m.id }

// Name returns the display name.
func (m *Maze) Name() string { return m.name }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// At returns the static cell at (col, row). Anything outside the grid reads as Wall.
func (m *Maze) At(col, row int) Cell {
	if !m.inBounds(col, row) {
		return Wall
	}
	return m.cells[row][col]
}

// IsWall reports whether (col, row) blocks movement.
// Rows outside the grid are walls. Columns outside the grid are open so that
// a step off the edge of a wrap row can be resolved by the caller.
func (m *Maze) IsWall(col, row int) bool {
	if row < 0 || row >= m.height {
		return true
	}
	if col < 0 || col >= m.width {
		return false
	}
	return m.cells[row][col] == Wall
}

// IsRestrictedZone reports whether (col, row) lies inside the ghost home.
// The player may never enter it; ghosts may.
func (m *Maze) IsRestrictedZone(col, row int) bool {
	return m.home.Contains(col, row)
}

// WrapsRow reports whether stepping off either horizontal edge of row
// reappears on the opposite edge. Only rows whose outermost cells are both
// open wrap.
func (m *Maze) WrapsRow(row int) bool {
	if row < 0 || row >= m.height {
		return false
	}
	return m.cells[row][0] != Wall && m.cells[row][m.width-1] != Wall
}

// WrapsColumn reports whether vertical wraparound exists. It never does.
func (m *Maze) WrapsColumn() bool { return false }

// Wrap normalizes a position that stepped off a horizontal edge.
// ok is false when the position cannot be occupied.
func (m *Maze) Wrap(p core.Point) (core.Point, bool) {
	if p.Y < 0 || p.Y >= m.height {
		return p, false
	}
	if p.X >= 0 && p.X < m.width {
		return p, true
	}
	if !m.WrapsRow(p.Y) {
		return p, false
	}
	if p.X < 0 {
		return core.Pt(m.width-1, p.Y), true
	}
	return core.Pt(0, p.Y), true
}

// Home returns the ghost home rectangle.
func (m *Maze) Home() core.Rect { return m.home }

// HomeExit returns the tile a confined ghost walks to before it is released.
func (m *Maze) HomeExit() core.Point { return m.exit }

// PlayerSpawn returns the player's start tile.
func (m *Maze) PlayerSpawn() core.Point { return m.player }

// GhostSpawn returns the start tile of the i-th ghost (direct, ambush, pincer, shy).
func (m *Maze) GhostSpawn(i int) core.Point { return m.ghosts[i] }

// ScatterCorner returns the scatter target of the i-th ghost.
func (m *Maze) ScatterCorner(i int) core.Point { return m.corners[i] }

// BonusTile returns where bonus items appear.
func (m *Maze) BonusTile() core.Point { return m.bonus }

// IsDoor reports whether (col, row) is a ghost door tile.
func (m *Maze) IsDoor(col, row int) bool {
	for _, d := range m.door {
		if d.X == col && d.Y == row {
			return true
		}
	}
	return false
}

// Collectibles returns every pellet and power pellet position in row-major order.
func (m *Maze) Collectibles() []Item {
	var items []Item
	for y, row := range m.cells {
		for x, c := range row {
			if c.IsCollectible() {
				items = append(items, Item{Pos: core.Pt(x, y), Kind: c})
			}
		}
	}
	return items
}

// Item is a collectible placement read from the grid.
type Item struct {
	Pos  core.Point
	Kind Cell
}

func (m *Maze) inBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}
