package snake

import (
	"math/rand"

	"termsnake/internal/core"
)

// SampleEmptyCell picks a uniformly random unoccupied cell on a
// width×height grid. Cells are enumerated in row-major order and the pick
// is a single draw over the empty set, so the call terminates even when
// the board is nearly full. Returns ok=false iff no cell is free, which is
// the win condition.
func SampleEmptyCell(rng *rand.Rand, width, height int, occupied func(core.Vec) bool) (core.Vec, bool) {
	empties := make([]core.Vec, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := core.Vec{X: x, Y: y}
			if !occupied(cell) {
				empties = append(empties, cell)
			}
		}
	}

	if len(empties) == 0 {
		return core.Vec{}, false
	}
	return empties[rng.Intn(len(empties))], true
}
