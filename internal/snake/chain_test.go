package snake

import (
	"testing"

	"termsnake/internal/core"
)

func TestChainOrder(t *testing.T) {
	c := newChain([]core.Vec{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}})

	if c.len() != 3 {
		t.Fatalf("len() = %d, expected 3", c.len())
	}
	if c.head() != (core.Vec{X: 2, Y: 0}) {
		t.Errorf("head() = %v, expected (2,0)", c.head())
	}

	cells := c.cells()
	expected := []core.Vec{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("cells()[%d] = %v, expected %v", i, cells[i], expected[i])
		}
	}
}

func TestChainMoveCycle(t *testing.T) {
	c := newChain([]core.Vec{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}})

	// A move is push-front plus pop-back
	c.pushFront(core.Vec{X: 3, Y: 0})
	tail := c.popBack()

	if tail != (core.Vec{X: 0, Y: 0}) {
		t.Errorf("popBack() = %v, expected old tail (0,0)", tail)
	}
	if c.len() != 3 {
		t.Errorf("len() = %d after move, expected 3", c.len())
	}
	if c.head() != (core.Vec{X: 3, Y: 0}) {
		t.Errorf("head() = %v, expected (3,0)", c.head())
	}
	if c.contains(core.Vec{X: 0, Y: 0}) {
		t.Error("Popped cell should leave the occupancy set")
	}
	if !c.contains(core.Vec{X: 3, Y: 0}) {
		t.Error("Pushed cell should enter the occupancy set")
	}
}

func TestChainGrowth(t *testing.T) {
	c := newChain([]core.Vec{{X: 0, Y: 0}})

	// Push far past the initial capacity to exercise ring growth
	for i := 1; i < 100; i++ {
		c.pushFront(core.Vec{X: i, Y: 0})
	}

	if c.len() != 100 {
		t.Fatalf("len() = %d, expected 100", c.len())
	}
	if c.head() != (core.Vec{X: 99, Y: 0}) {
		t.Errorf("head() = %v, expected (99,0)", c.head())
	}

	// Order preserved: head-first from 99 down to 0
	cells := c.cells()
	for i, cell := range cells {
		if cell != (core.Vec{X: 99 - i, Y: 0}) {
			t.Fatalf("cells()[%d] = %v, expected (%d,0)", i, cell, 99-i)
		}
	}

	// Occupancy set stays in sync through growth
	for i := 0; i < 100; i++ {
		if !c.contains(core.Vec{X: i, Y: 0}) {
			t.Fatalf("contains((%d,0)) = false after growth", i)
		}
	}
}

func TestChainWrapAround(t *testing.T) {
	// Alternate pushes and pops so the ring indices wrap repeatedly.
	c := newChain([]core.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})

	for i := 1; i <= 50; i++ {
		c.pushFront(core.Vec{X: 0, Y: i})
		c.popBack()
	}

	if c.len() != 3 {
		t.Fatalf("len() = %d, expected 3", c.len())
	}
	expected := []core.Vec{{X: 0, Y: 50}, {X: 0, Y: 49}, {X: 0, Y: 48}}
	cells := c.cells()
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("cells()[%d] = %v, expected %v", i, cells[i], expected[i])
		}
	}
	if len(c.occupied) != 3 {
		t.Errorf("occupancy set has %d entries, expected 3", len(c.occupied))
	}
}
