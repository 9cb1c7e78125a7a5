package carve

import (
	"fmt"
	"math"
)

// protectPenalty is added to the energy of protected pixels. The largest
// possible gradient energy is 3*255*2, so any value well above that forces
// seams around protected regions whenever an unprotected route exists.
const protectPenalty = 1 << 20

// Energy returns the gradient energy of the pixel at (row, col): for each
// channel, half the absolute central difference along each axis, with
// one-sided differences substituted on the image border, summed over R, G, B.
//
// The border substitutions are enumerated per axis rather than produced by
// clamping indices; clamping would silently yield different numbers (a clamped
// central difference halves the one-sided gap). Combined over the two axes
// this covers the four corners, the four edges, and the interior. An axis with
// a single pixel has no neighbor in either direction and contributes zero.
//
// A flat-colored image therefore has zero energy everywhere, and the result
// is non-negative for every valid coordinate.
func Energy(g *PixelGrid, row, col int) (float64, error) {
	if g.empty() {
		return 0, ErrInvalidImage
	}
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, row, col, g.width, g.height)
	}
	return g.energyAt(row, col), nil
}

// energyAt is the unchecked energy used by Build and UpdateAfterRemoval.
func (g *PixelGrid) energyAt(row, col int) float64 {
	var e float64
	for ch := Red; ch <= Blue; ch++ {
		e += g.verticalDiff(row, col, ch) + g.horizontalDiff(row, col, ch)
	}
	if g.protect != nil && g.protect[row*g.width+col] {
		e += protectPenalty
	}
	return e
}

// verticalDiff is the vertical gradient term for one channel: a halved
// central difference in the interior, a one-sided difference on the top and
// bottom rows.
func (g *PixelGrid) verticalDiff(row, col int, ch Channel) float64 {
	switch {
	case g.height == 1:
		return 0
	case row == 0:
		return math.Abs(g.at(0, col, ch) - g.at(1, col, ch))
	case row == g.height-1:
		return math.Abs(g.at(row, col, ch) - g.at(row-1, col, ch))
	default:
		return math.Abs(g.at(row-1, col, ch)-g.at(row+1, col, ch)) / 2
	}
}

// horizontalDiff mirrors verticalDiff for the left and right columns.
func (g *PixelGrid) horizontalDiff(row, col int, ch Channel) float64 {
	switch {
	case g.width == 1:
		return 0
	case col == 0:
		return math.Abs(g.at(row, 0, ch) - g.at(row, 1, ch))
	case col == g.width-1:
		return math.Abs(g.at(row, col, ch) - g.at(row, col-1, ch))
	default:
		return math.Abs(g.at(row, col-1, ch)-g.at(row, col+1, ch)) / 2
	}
}
