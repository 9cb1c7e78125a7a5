package carve

import "fmt"

// CostTable holds, for each cell, the minimum cumulative energy of any seam
// prefix ending there: a path of one cell per row from row 0 down to the cell,
// each step moving to column c-1, c, or c+1 of the row below.
//
// Storage is a single flat buffer with an explicit stride. The stride is fixed
// at the width the table was built with; the logical width shrinks by one per
// seam removal while the height never changes, so table.Width() tracks the
// image's current width after every operation.
type CostTable struct {
	width, height int
	stride        int
	cells         []float64
}

// Width returns the current number of valid columns per row.
func (t *CostTable) Width() int { return t.width }

// Height returns the number of rows.
func (t *CostTable) Height() int { return t.height }

// At returns the cumulative cost at (row, col).
func (t *CostTable) At(row, col int) (float64, error) {
	if t == nil || t.cells == nil {
		return 0, ErrInvalidTable
	}
	if row < 0 || row >= t.height || col < 0 || col >= t.width {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, row, col, t.width, t.height)
	}
	return t.at(row, col), nil
}

func (t *CostTable) at(row, col int) float64 {
	return t.cells[row*t.stride+col]
}

func (t *CostTable) set(row, col int, v float64) {
	t.cells[row*t.stride+col] = v
}

// Build computes the full cost table for a grid in one top-down pass.
//
// Row 0 is raw pixel energy. Every later cell adds its own energy to the
// cheapest of its up-to-three parents in the row above: columns {j-1, j, j+1}
// restricted to the table, so the left edge considers {j, j+1} and the right
// edge {j-1, j}. Each cell is visited exactly once: O(width*height) time and
// space.
func Build(g *PixelGrid) (*CostTable, error) {
	if g.empty() {
		return nil, ErrInvalidImage
	}
	t := &CostTable{
		width:  g.width,
		height: g.height,
		stride: g.width,
		cells:  make([]float64, g.width*g.height),
	}
	for j := 0; j < t.width; j++ {
		t.set(0, j, g.energyAt(0, j))
	}
	for i := 1; i < t.height; i++ {
		for j := 0; j < t.width; j++ {
			t.set(i, j, g.energyAt(i, j)+t.minParent(i, j))
		}
	}
	return t, nil
}

// minParent returns the cheapest reachable cost in row i-1 for a cell in
// column j of row i.
func (t *CostTable) minParent(i, j int) float64 {
	best := t.at(i-1, j)
	if j > 0 && t.at(i-1, j-1) < best {
		best = t.at(i-1, j-1)
	}
	if j+1 < t.width && t.at(i-1, j+1) < best {
		best = t.at(i-1, j+1)
	}
	return best
}
