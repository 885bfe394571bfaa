package snake

import "termsnake/internal/core"

// Snapshot captures the complete observable game state for determinism
// testing and debugging.
type Snapshot struct {
	Tick    uint64
	Score   int
	Len     int
	Head    core.Vec
	Dir     Direction
	Pending Direction
	Food    core.Vec
	HasFood bool
	State   State
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Len:     g.body.len(),
		Head:    g.body.head(),
		Dir:     g.dir,
		Pending: g.nextDir,
		Food:    g.food,
		HasFood: g.hasFood,
		State:   g.state,
	}
}
