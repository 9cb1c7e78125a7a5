package carve

import (
	"errors"
	"image"
	"math/rand"
	"testing"
)

func TestRemoveSeam_DeletesOnePixelPerRow(t *testing.T) {
	// Distinct red values 0..8 so surviving pixels are identifiable.
	g, err := NewPixelGrid(3, 3)
	if err != nil {
		t.Fatalf("NewPixelGrid failed: %v", err)
	}
	for i := 0; i < 9; i++ {
		g.pix[3*i] = float64(i)
	}

	seam := &Seam{Cols: []int{2, 1, 0}}
	if err := RemoveSeam(g, seam); err != nil {
		t.Fatalf("RemoveSeam failed: %v", err)
	}

	if g.Width() != 2 || g.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 2x3", g.Width(), g.Height())
	}

	// Row 0 loses col 2, row 1 loses col 1, row 2 loses col 0; survivors
	// keep their order.
	want := []float64{0, 1, 3, 5, 7, 8}
	for i, w := range want {
		if got := g.pix[3*i]; got != w {
			t.Errorf("survivor %d: got red=%v, want %v", i, got, w)
		}
	}
}

// legacyRemove reproduces the original formulation: decrement the stride
// first, then for each row top to bottom compute the flat index against the
// new stride and shift the entire remainder of the buffer left by one pixel,
// cascading across row boundaries.
func legacyRemove(pix []float64, w, h int, cols []int) []float64 {
	buf := append([]float64(nil), pix...)
	newW := w - 1
	n := len(buf)
	for r := 0; r < h; r++ {
		idx := 3 * (r*newW + cols[r])
		copy(buf[idx:], buf[idx+3:n])
		n -= 3
	}
	return buf[:n]
}

func TestRemoveSeam_MatchesLegacyGlobalShift(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 25; trial++ {
		w := 2 + rng.Intn(12)
		h := 1 + rng.Intn(12)
		g := randGrid(t, rng, w, h)

		table, err := Build(g)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		seam, err := FindSeam(table)
		if err != nil {
			t.Fatalf("FindSeam failed: %v", err)
		}

		want := legacyRemove(g.pix, w, h, seam.Cols)
		if err := RemoveSeam(g, seam); err != nil {
			t.Fatalf("RemoveSeam failed: %v", err)
		}

		if len(g.pix) != len(want) {
			t.Fatalf("buffer length: got %d, want %d", len(g.pix), len(want))
		}
		for i := range want {
			if g.pix[i] != want[i] {
				t.Fatalf("trial %d: buffer[%d]: got %v, want %v", trial, i, g.pix[i], want[i])
			}
		}
	}
}

func TestRemoveSeam_ShiftsProtection(t *testing.T) {
	g := flatGrid(t, 4, 3, 0)
	if err := g.Protect(image.Rect(2, 0, 3, 3)); err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	// Remove the leftmost column in every row; marks on column 2 must land
	// on column 1 of the narrower grid.
	if err := RemoveSeam(g, &Seam{Cols: []int{0, 0, 0}}); err != nil {
		t.Fatalf("RemoveSeam failed: %v", err)
	}
	for r := 0; r < 3; r++ {
		if !g.Protected(r, 1) {
			t.Errorf("row %d: expected protection to move to column 1", r)
		}
		if g.Protected(r, 0) || g.Protected(r, 2) {
			t.Errorf("row %d: unexpected protection outside column 1", r)
		}
	}
}

func TestRemoveSeam_Errors(t *testing.T) {
	g := flatGrid(t, 3, 3, 0)

	if err := RemoveSeam(nil, &Seam{Cols: []int{0, 0, 0}}); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("nil grid: got %v, want ErrInvalidImage", err)
	}
	if err := RemoveSeam(g, nil); !errors.Is(err, ErrInvalidSeam) {
		t.Errorf("nil seam: got %v, want ErrInvalidSeam", err)
	}
	if err := RemoveSeam(g, &Seam{Cols: []int{0, 0}}); !errors.Is(err, ErrInvalidSeam) {
		t.Errorf("short seam: got %v, want ErrInvalidSeam", err)
	}
	if err := RemoveSeam(g, &Seam{Cols: []int{0, 0, 3}}); !errors.Is(err, ErrInvalidSeam) {
		t.Errorf("column out of range: got %v, want ErrInvalidSeam", err)
	}
	if err := RemoveSeam(g, &Seam{Cols: []int{0, 2, 0}}); !errors.Is(err, ErrInvalidSeam) {
		t.Errorf("disconnected seam: got %v, want ErrInvalidSeam", err)
	}

	zero := &PixelGrid{width: 0, height: 3}
	if err := RemoveSeam(zero, &Seam{Cols: []int{0, 0, 0}}); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("zero-width grid: got %v, want ErrEmptyImage", err)
	}
}
