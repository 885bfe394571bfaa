// Package snake implements the snake game state machine.
// All logic is deterministic given a seed; the platform layer owns the
// single Game instance and drives it through Tick, SetPendingDirection
// and Reset. No logic here touches the terminal.
package snake

import (
	"math/rand"

	"termsnake/internal/config"
	"termsnake/internal/core"
)

// State is the game's lifecycle state.
type State int

const (
	// StateAlive is the only state in which the snake moves.
	StateAlive State = iota
	// StateGameOver is entered on boundary or self collision. Terminal
	// until Reset.
	StateGameOver
	// StateWon is entered when the snake fills the board and no food cell
	// remains. Terminal until Reset.
	StateWon
)

func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateGameOver:
		return "game_over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Game holds the full state of one snake session: the body chain, the
// committed and pending directions, the food cell, score and lifecycle
// state. Mutation happens only through Reset, Tick and SetPendingDirection.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	tick    uint64
	body    *chain
	dir     Direction // committed: applied during the most recent move
	nextDir Direction // pending: applied at the next Tick
	state   State
	score   int
	food    core.Vec
	hasFood bool
}

// New creates a game for the given configuration.
// Reset must be called before the first Tick.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Reset initializes or restarts the game: a three-cell chain centered on
// the grid heading right, score zero, and fresh food. Safe to call in any
// state.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.score = 0
	g.state = StateAlive
	g.dir = DirRight
	g.nextDir = DirRight

	center := core.Vec{X: g.cfg.Grid.Width / 2, Y: g.cfg.Grid.Height / 2}
	g.body = newChain([]core.Vec{
		center,
		{X: center.X - 1, Y: center.Y},
		{X: center.X - 2, Y: center.Y},
	})

	g.spawnFood()
}

// SetPendingDirection queues a direction change for the next Tick.
// Ignored outside the Alive state and for the exact reversal of the
// committed direction. Repeated calls between ticks overwrite each other.
func (g *Game) SetPendingDirection(d Direction) {
	if g.state != StateAlive {
		return
	}
	if d == g.dir.Opposite() {
		return
	}
	g.nextDir = d
}

// Tick advances the simulation by one step. It is a no-op in terminal
// states. A tick commits the pending direction, moves the head one cell,
// and resolves collisions and growth.
func (g *Game) Tick() {
	if g.state != StateAlive {
		return
	}
	g.tick++

	g.dir = g.nextDir
	newHead := g.body.head().Add(g.dir.Vec())

	// Collision is checked against the pre-move chain, tail included:
	// moving into the cell the tail is about to vacate still kills.
	if !newHead.Inside(g.cfg.Grid.Width, g.cfg.Grid.Height) || g.body.contains(newHead) {
		g.state = StateGameOver
		return
	}

	g.body.pushFront(newHead)

	if g.hasFood && newHead == g.food {
		// Growth: the tail stays, the chain gains one cell.
		g.score++
		g.spawnFood()
	} else {
		g.body.popBack()
	}
}

// spawnFood places food on a random empty cell. A full board means the
// player has won: the food becomes absent and the game enters StateWon.
func (g *Game) spawnFood() {
	food, ok := SampleEmptyCell(g.rng, g.cfg.Grid.Width, g.cfg.Grid.Height, g.body.contains)
	if !ok {
		g.hasFood = false
		g.state = StateWon
		return
	}
	g.food = food
	g.hasFood = true
}

// Cells returns the chain cells in head-first order.
func (g *Game) Cells() []core.Vec {
	return g.body.cells()
}

// Head returns the chain's head cell.
func (g *Game) Head() core.Vec {
	return g.body.head()
}

// Length returns the chain length.
func (g *Game) Length() int {
	return g.body.len()
}

// Food returns the current food cell. ok is false when the board is full
// and no food is placed.
func (g *Game) Food() (pos core.Vec, ok bool) {
	return g.food, g.hasFood
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Alive reports whether the game is still running.
func (g *Game) Alive() bool {
	return g.state == StateAlive
}

// Direction returns the committed movement direction.
func (g *Game) Direction() Direction {
	return g.dir
}

// Config returns the immutable game configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// TickRate returns the current simulation rate in ticks per second,
// derived from the score.
func (g *Game) TickRate() int {
	return TickRate(g.cfg.Speed, g.score)
}
