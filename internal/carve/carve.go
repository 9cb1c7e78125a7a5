package carve

import "fmt"

// ReduceWidth returns a copy of the grid narrowed by k minimum-energy seams.
// The input grid is never modified.
//
// k must satisfy 0 <= k < width: a request that would leave no columns is
// rejected with ErrSeamCount before any work happens, so a zero-width image
// can never be produced silently. k == 0 returns a plain copy.
//
// The cost table is built once and incrementally repaired between removals.
// Any failure mid-loop aborts the whole call with the wrapped error; no
// partially carved image is ever returned.
func ReduceWidth(g *PixelGrid, k int) (*PixelGrid, error) {
	if g.empty() {
		return nil, ErrInvalidImage
	}
	if k < 0 || k >= g.width {
		return nil, fmt.Errorf("%w: k=%d, width=%d", ErrSeamCount, k, g.width)
	}

	work := g.Clone()
	if k == 0 {
		return work, nil
	}

	table, err := Build(work)
	if err != nil {
		return nil, err
	}

	for i := 0; i < k; i++ {
		seam, err := FindSeam(table)
		if err != nil {
			return nil, fmt.Errorf("removal %d: %w", i, err)
		}
		if err := RemoveSeam(work, seam); err != nil {
			return nil, fmt.Errorf("removal %d: %w", i, err)
		}
		if err := UpdateAfterRemoval(work, table, seam); err != nil {
			return nil, fmt.Errorf("removal %d: %w", i, err)
		}
	}
	return work, nil
}
