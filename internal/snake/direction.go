package snake

import "termsnake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vec returns the unit vector for the direction.
// The grid's y axis grows downward.
func (d Direction) Vec() core.Vec {
	switch d {
	case DirRight:
		return core.Vec{X: 1, Y: 0}
	case DirDown:
		return core.Vec{X: 0, Y: 1}
	case DirLeft:
		return core.Vec{X: -1, Y: 0}
	case DirUp:
		return core.Vec{X: 0, Y: -1}
	default:
		return core.Vec{}
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirDown
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// DirectionForAction translates a directional input action to a Direction.
// Returns false for non-directional actions.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}
