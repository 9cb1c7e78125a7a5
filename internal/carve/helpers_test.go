package carve

import (
	"math/rand"
	"testing"
)

// flatGrid builds a grid with every channel of every pixel set to v.
func flatGrid(t *testing.T, w, h int, v float64) *PixelGrid {
	t.Helper()
	g, err := NewPixelGrid(w, h)
	if err != nil {
		t.Fatalf("NewPixelGrid(%d,%d) failed: %v", w, h, err)
	}
	for i := range g.pix {
		g.pix[i] = v
	}
	return g
}

// gradientGrid builds a grid whose every channel equals column*10, the
// hand-computable uniform-gradient fixture.
func gradientGrid(t *testing.T, w, h int) *PixelGrid {
	t.Helper()
	g, err := NewPixelGrid(w, h)
	if err != nil {
		t.Fatalf("NewPixelGrid(%d,%d) failed: %v", w, h, err)
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			for ch := Red; ch <= Blue; ch++ {
				g.pix[3*(r*w+c)+int(ch)] = float64(c * 10)
			}
		}
	}
	return g
}

// randGrid builds a grid with independent channel values in [0, 256).
func randGrid(t *testing.T, rng *rand.Rand, w, h int) *PixelGrid {
	t.Helper()
	g, err := NewPixelGrid(w, h)
	if err != nil {
		t.Fatalf("NewPixelGrid(%d,%d) failed: %v", w, h, err)
	}
	for i := range g.pix {
		g.pix[i] = float64(rng.Intn(256))
	}
	return g
}

// naiveCostTable recomputes the full DP table from scratch with the plain
// recurrence. It is the correctness oracle for Build and for the cone-limited
// incremental update; it is deliberately not the shipped code path.
func naiveCostTable(t *testing.T, g *PixelGrid) [][]float64 {
	t.Helper()
	table := make([][]float64, g.Height())
	for i := range table {
		table[i] = make([]float64, g.Width())
		for j := 0; j < g.Width(); j++ {
			e, err := Energy(g, i, j)
			if err != nil {
				t.Fatalf("Energy(%d,%d) failed: %v", i, j, err)
			}
			if i == 0 {
				table[i][j] = e
				continue
			}
			best := table[i-1][j]
			if j > 0 && table[i-1][j-1] < best {
				best = table[i-1][j-1]
			}
			if j+1 < g.Width() && table[i-1][j+1] < best {
				best = table[i-1][j+1]
			}
			table[i][j] = e + best
		}
	}
	return table
}
