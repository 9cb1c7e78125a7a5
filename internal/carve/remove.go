package carve

// RemoveSeam deletes the seam's pixel from every row, shrinking the grid's
// width by one. The protection buffer, when present, is compacted identically
// so marks keep covering the pixels they were set on.
//
// Rows are processed top to bottom with a single write cursor over the flat
// buffer, which reproduces the classic "decrement the stride, then cascade one
// global left shift across row boundaries" formulation exactly, without
// depending on its ordering subtleties: each row is an explicit delete-and-
// compact against the new width.
func RemoveSeam(g *PixelGrid, s *Seam) error {
	if g == nil || g.height <= 0 {
		return ErrInvalidImage
	}
	if g.width == 0 {
		return ErrEmptyImage
	}
	if g.empty() {
		return ErrInvalidImage
	}
	if !s.validFor(g.width, g.height) {
		return ErrInvalidSeam
	}

	dst := 0
	for r := 0; r < g.height; r++ {
		skip := s.Cols[r]
		for c := 0; c < g.width; c++ {
			if c == skip {
				continue
			}
			src := 3 * (r*g.width + c)
			g.pix[dst] = g.pix[src]
			g.pix[dst+1] = g.pix[src+1]
			g.pix[dst+2] = g.pix[src+2]
			dst += 3
		}
	}

	if g.protect != nil {
		pdst := 0
		for r := 0; r < g.height; r++ {
			skip := s.Cols[r]
			for c := 0; c < g.width; c++ {
				if c == skip {
					continue
				}
				g.protect[pdst] = g.protect[r*g.width+c]
				pdst++
			}
		}
	}

	g.width--
	g.pix = g.pix[:3*g.width*g.height]
	if g.protect != nil {
		g.protect = g.protect[:g.width*g.height]
	}
	return nil
}
