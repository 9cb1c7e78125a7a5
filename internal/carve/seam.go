package carve

// Seam is one column index per row, row 0 first, describing a connected
// top-to-bottom path: adjacent rows' columns differ by at most one. Cost is
// the total cumulative energy of the path, taken from the bottom-row cell it
// was extracted from.
//
// A seam is transient: FindSeam creates one per iteration and RemoveSeam and
// UpdateAfterRemoval consume it against the width it was extracted at.
type Seam struct {
	Cols []int
	Cost float64
}

// FindSeam extracts the minimum-cost seam from a built table.
//
// The bottom anchor is the first minimum of a left-to-right scan of the last
// row, so ties resolve to the lowest column. Backtracking upward from child
// column c compares the up-to-three candidate parents {c-1, c, c+1}:
//
//   - all three present: c-1 wins only when the triple strictly decreases
//     left to right; otherwise c wins when it is strictly cheaper than c+1;
//     otherwise c+1.
//   - left edge (c == 0): c when strictly cheaper than c+1, else c+1.
//   - right edge: c-1 when strictly cheaper than c, else c.
//
// The fixed order makes the seam deterministic and reproducible for a given
// table even when costs tie.
func FindSeam(t *CostTable) (*Seam, error) {
	if t == nil || t.cells == nil {
		return nil, ErrInvalidTable
	}
	if t.width <= 0 || t.height <= 0 {
		return nil, ErrInvalidTable
	}

	s := &Seam{Cols: make([]int, t.height)}

	bottom := t.height - 1
	c := 0
	for j := 1; j < t.width; j++ {
		if t.at(bottom, j) < t.at(bottom, c) {
			c = j
		}
	}
	s.Cols[bottom] = c
	s.Cost = t.at(bottom, c)

	for r := bottom - 1; r >= 0; r-- {
		c = t.parentCol(r, c)
		s.Cols[r] = c
	}
	return s, nil
}

// parentCol applies the backtracking tie-break at row r for child column c.
func (t *CostTable) parentCol(r, c int) int {
	switch {
	case c == 0:
		if t.width == 1 || t.at(r, 0) < t.at(r, 1) {
			return 0
		}
		return 1
	case c == t.width-1:
		if t.at(r, c-1) < t.at(r, c) {
			return c - 1
		}
		return c
	default:
		left, mid, right := t.at(r, c-1), t.at(r, c), t.at(r, c+1)
		if left < mid && mid < right {
			return c - 1
		}
		if mid < right {
			return c
		}
		return c + 1
	}
}

// validFor reports whether the seam can be applied to an image of the given
// dimensions: one in-range column per row, adjacent columns within one step.
func (s *Seam) validFor(width, height int) bool {
	if s == nil || len(s.Cols) != height {
		return false
	}
	for r, c := range s.Cols {
		if c < 0 || c >= width {
			return false
		}
		if r > 0 {
			d := c - s.Cols[r-1]
			if d < -1 || d > 1 {
				return false
			}
		}
	}
	return true
}
