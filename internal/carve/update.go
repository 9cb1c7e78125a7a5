package carve

import "fmt"

// UpdateAfterRemoval repairs the cost table in place after RemoveSeam has
// taken the seam out of the grid, so the table does not need a full rebuild
// between iterations.
//
// Phase one mirrors the pixel compaction: every table row is left-shifted from
// the seam's column and the logical width drops by one. Phase two recomputes
// only the cells a removal can perturb. Removing a column changes the energy
// of both bordering pixels (each gets a new horizontal neighbor), and the DP
// perturbation fans out one column per row from there. That is the triangular
// cone [c0-i-1, c0+i+1] at row i (c0 = seam column in row 0), clipped to the
// table. Cells outside the cone keep their shifted values; parents read during
// the recompute are always final because rows are repaired top to bottom and
// out-of-cone parents never change. Once the cone covers the whole row it
// saturates, so the worst case degrades to a rebuild, not to an incorrect
// table.
func UpdateAfterRemoval(g *PixelGrid, t *CostTable, s *Seam) error {
	if t == nil || t.cells == nil {
		return ErrInvalidTable
	}
	// The grid has already been narrowed; the table is one column behind.
	if !s.validFor(t.width, t.height) {
		return ErrInvalidSeam
	}
	if g.empty() || g.height != t.height || g.width != t.width-1 {
		return fmt.Errorf("%w: table %dx%d does not pair with image %dx%d",
			ErrInvalidTable, t.width, t.height, g.width, g.height)
	}

	for r := 0; r < t.height; r++ {
		row := t.cells[r*t.stride : r*t.stride+t.width]
		copy(row[s.Cols[r]:], row[s.Cols[r]+1:])
	}
	t.width--

	if t.width == 0 {
		return nil
	}

	c0 := s.Cols[0]
	for i := 0; i < t.height; i++ {
		lo := c0 - i - 1
		if lo < 0 {
			lo = 0
		}
		hi := c0 + i + 1
		if hi > t.width-1 {
			hi = t.width - 1
		}
		for j := lo; j <= hi; j++ {
			if i == 0 {
				t.set(0, j, g.energyAt(0, j))
				continue
			}
			t.set(i, j, g.energyAt(i, j)+t.minParent(i, j))
		}
	}
	return nil
}
