package snake

import "termsnake/internal/core"

// chain is the ordered sequence of cells occupied by the snake, head first.
// It is a ring-buffer deque: movement is a front push plus a back pop, and
// growth is a front push alone. An occupancy set is kept in sync with every
// push and pop so membership checks stay O(1) as the snake grows.
type chain struct {
	buf      []core.Vec
	start    int // index of the head within buf
	n        int
	occupied map[core.Vec]struct{}
}

// newChain creates a chain holding the given cells, head first.
func newChain(cells []core.Vec) *chain {
	c := &chain{
		buf:      make([]core.Vec, core.Max(len(cells)*2, 8)),
		occupied: make(map[core.Vec]struct{}, len(cells)),
	}
	for i, cell := range cells {
		c.buf[i] = cell
		c.occupied[cell] = struct{}{}
	}
	c.n = len(cells)
	return c
}

// len returns the number of cells in the chain.
func (c *chain) len() int {
	return c.n
}

// head returns the front cell. The chain is never empty while in use.
func (c *chain) head() core.Vec {
	return c.buf[c.start]
}

// contains reports whether the cell is occupied by the chain.
func (c *chain) contains(v core.Vec) bool {
	_, ok := c.occupied[v]
	return ok
}

// pushFront prepends a new head cell.
func (c *chain) pushFront(v core.Vec) {
	if c.n == len(c.buf) {
		c.grow()
	}
	c.start = (c.start - 1 + len(c.buf)) % len(c.buf)
	c.buf[c.start] = v
	c.n++
	c.occupied[v] = struct{}{}
}

// popBack removes and returns the tail cell.
func (c *chain) popBack() core.Vec {
	tail := c.buf[(c.start+c.n-1)%len(c.buf)]
	c.n--
	delete(c.occupied, tail)
	return tail
}

// at returns the i-th cell from the head.
func (c *chain) at(i int) core.Vec {
	return c.buf[(c.start+i)%len(c.buf)]
}

// cells returns a head-first copy of the chain.
func (c *chain) cells() []core.Vec {
	out := make([]core.Vec, c.n)
	for i := range out {
		out[i] = c.at(i)
	}
	return out
}

// grow doubles the buffer, compacting the ring to the front.
func (c *chain) grow() {
	next := make([]core.Vec, len(c.buf)*2)
	for i := 0; i < c.n; i++ {
		next[i] = c.at(i)
	}
	c.buf = next
	c.start = 0
}
