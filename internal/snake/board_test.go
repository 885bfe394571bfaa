package snake

import (
	"math/rand"
	"testing"

	"termsnake/internal/core"
)

func TestSampleEmptyCellAvoidsOccupied(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	occupied := map[core.Vec]bool{
		{X: 0, Y: 0}: true,
		{X: 1, Y: 0}: true,
		{X: 2, Y: 2}: true,
	}

	for i := 0; i < 200; i++ {
		cell, ok := SampleEmptyCell(rng, 3, 3, func(v core.Vec) bool { return occupied[v] })
		if !ok {
			t.Fatal("Board is not full, sampler should find a cell")
		}
		if occupied[cell] {
			t.Fatalf("Sampler returned occupied cell %v", cell)
		}
		if !cell.Inside(3, 3) {
			t.Fatalf("Sampler returned out-of-grid cell %v", cell)
		}
	}
}

func TestSampleEmptyCellSingleFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	free := core.Vec{X: 1, Y: 1}

	cell, ok := SampleEmptyCell(rng, 2, 2, func(v core.Vec) bool { return v != free })
	if !ok {
		t.Fatal("One cell is free, sampler should find it")
	}
	if cell != free {
		t.Errorf("Sampler returned %v, expected the only free cell %v", cell, free)
	}
}

func TestSampleEmptyCellFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	_, ok := SampleEmptyCell(rng, 4, 4, func(core.Vec) bool { return true })
	if ok {
		t.Error("Sampler should report a full board")
	}
}

func TestSampleEmptyCellUniform(t *testing.T) {
	// Rough uniformity check: each free cell of a 2x2 board with one
	// occupied cell should be hit a reasonable number of times.
	rng := rand.New(rand.NewSource(4))
	blocked := core.Vec{X: 0, Y: 0}

	counts := make(map[core.Vec]int)
	const draws = 3000
	for i := 0; i < draws; i++ {
		cell, ok := SampleEmptyCell(rng, 2, 2, func(v core.Vec) bool { return v == blocked })
		if !ok {
			t.Fatal("Sampler should find a cell")
		}
		counts[cell]++
	}

	if len(counts) != 3 {
		t.Fatalf("Expected 3 distinct cells, got %d", len(counts))
	}
	for cell, n := range counts {
		if n < draws/6 {
			t.Errorf("Cell %v drawn only %d/%d times, distribution looks skewed", cell, n, draws)
		}
	}
}
