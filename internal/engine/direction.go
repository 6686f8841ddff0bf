package engine

import (
	"github.com/vovakirdan/maze-chase/internal/core"
)

// Direction is a cardinal heading. DirNone means standing still.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// searchOrder is the order ghosts enumerate candidate moves in. Ties in the
// penalized distance keep this order, so changing it changes replays.
var searchOrder = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the grid offset of one step.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	case DirRight:
		return core.Pt(1, 0)
	}
	return core.Point{}
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// DirectionOf maps a movement action to a heading.
func DirectionOf(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	}
	return DirNone
}
