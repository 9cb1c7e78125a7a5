package carve

import (
	"errors"
	"image"
	"math/rand"
	"testing"
)

func TestReduceWidth_ZeroIsCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := randGrid(t, rng, 6, 4)

	out, err := ReduceWidth(g, 0)
	if err != nil {
		t.Fatalf("ReduceWidth(0) failed: %v", err)
	}
	if out == g {
		t.Fatal("ReduceWidth(0) returned the input grid, want a copy")
	}
	if out.Width() != 6 || out.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 6x4", out.Width(), out.Height())
	}
	for i := range g.pix {
		if out.pix[i] != g.pix[i] {
			t.Fatalf("pixel buffer differs at %d", i)
		}
	}

	// And the copy really is independent.
	out.pix[0] = -1
	if g.pix[0] == -1 {
		t.Error("mutating the result changed the input")
	}
}

func TestReduceWidth_UniformGradientScenario(t *testing.T) {
	// Channel value = column*10: energy ties everywhere, so the removed seam
	// is exactly the tie-break path (2,1,0 from top to bottom).
	g := gradientGrid(t, 3, 3)

	out, err := ReduceWidth(g, 1)
	if err != nil {
		t.Fatalf("ReduceWidth failed: %v", err)
	}
	if out.Width() != 2 || out.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 2x3", out.Width(), out.Height())
	}

	wantRed := [][]float64{
		{0, 10},  // row 0 lost column 2
		{0, 20},  // row 1 lost column 1
		{10, 20}, // row 2 lost column 0
	}
	for r := range wantRed {
		for c := range wantRed[r] {
			got, err := out.At(r, c, Red)
			if err != nil {
				t.Fatalf("At(%d,%d) failed: %v", r, c, err)
			}
			if got != wantRed[r][c] {
				t.Errorf("pixel (%d,%d): got %v, want %v", r, c, got, wantRed[r][c])
			}
		}
	}

	// The input is untouched.
	if g.Width() != 3 {
		t.Errorf("input width changed to %d", g.Width())
	}
}

func TestReduceWidth_RejectsExhaustingWidth(t *testing.T) {
	g := flatGrid(t, 5, 4, 0)

	tests := []struct {
		name string
		k    int
	}{
		{"k equals width", 5},
		{"k exceeds width", 9},
		{"negative k", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReduceWidth(g, tt.k); !errors.Is(err, ErrSeamCount) {
				t.Errorf("ReduceWidth(k=%d): got %v, want ErrSeamCount", tt.k, err)
			}
		})
	}
}

func TestReduceWidth_SingleColumnImage(t *testing.T) {
	// A 1xH image cannot lose a seam; the request is rejected before any
	// removal is attempted, so a zero-width image is never produced.
	g := flatGrid(t, 1, 6, 50)
	if _, err := ReduceWidth(g, 1); !errors.Is(err, ErrSeamCount) {
		t.Errorf("1-wide image: got %v, want ErrSeamCount", err)
	}
	if out, err := ReduceWidth(g, 0); err != nil || out.Width() != 1 {
		t.Errorf("1-wide image with k=0: got (%v, %v), want unchanged copy", out, err)
	}
}

func TestReduceWidth_InvalidImage(t *testing.T) {
	if _, err := ReduceWidth(nil, 1); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("nil grid: got %v, want ErrInvalidImage", err)
	}
}

func TestReduceWidth_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	g := randGrid(t, rng, 14, 10)

	first, err := ReduceWidth(g, 7)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := ReduceWidth(g, 7)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if first.Width() != 7 || second.Width() != 7 {
		t.Fatalf("widths: got %d and %d, want 7", first.Width(), second.Width())
	}
	for i := range first.pix {
		if first.pix[i] != second.pix[i] {
			t.Fatalf("runs diverge at buffer index %d", i)
		}
	}
}

func TestReduceWidth_EachRemovalDropsOneColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := randGrid(t, rng, 9, 6)

	for k := 0; k < 9; k++ {
		out, err := ReduceWidth(g, k)
		if err != nil {
			t.Fatalf("ReduceWidth(k=%d) failed: %v", k, err)
		}
		if out.Width() != 9-k {
			t.Errorf("k=%d: got width %d, want %d", k, out.Width(), 9-k)
		}
		if out.Height() != 6 {
			t.Errorf("k=%d: height changed to %d", k, out.Height())
		}
	}
}

func TestReduceWidth_ProtectionSteersSeams(t *testing.T) {
	// A flat image ties everywhere; protecting the middle column makes it
	// strictly more expensive, so no seam may pass through it.
	g := flatGrid(t, 3, 5, 100)
	if err := g.Protect(image.Rect(1, 0, 2, 5)); err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	table, err := Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	seam, err := FindSeam(table)
	if err != nil {
		t.Fatalf("FindSeam failed: %v", err)
	}
	for r, c := range seam.Cols {
		if g.Protected(r, c) {
			t.Errorf("row %d: seam entered protected column %d", r, c)
		}
	}

	out, err := ReduceWidth(g, 1)
	if err != nil {
		t.Fatalf("ReduceWidth failed: %v", err)
	}
	if out.Width() != 2 {
		t.Fatalf("width: got %d, want 2", out.Width())
	}
}
