package carve

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Channel selects one of the three color channels of a PixelGrid.
//
// The set is closed: Red, Green, and Blue are the only valid values, and they
// double as offsets into the grid's per-pixel triplet.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// valid reports whether ch is one of the three defined channels.
func (ch Channel) valid() bool {
	return ch >= Red && ch <= Blue
}

// PixelGrid is the engine's working image: a row-major buffer of RGB triplets
// stored as float64 so gradient arithmetic needs no conversions.
//
// The grid is mutated in place by RemoveSeam, which shrinks the width by one.
// The invariant len(pix) == 3*width*height holds after every operation.
//
// An optional protection buffer marks pixels whose energy is inflated so seams
// route around them; it shrinks in lockstep with the pixel buffer.
type PixelGrid struct {
	width, height int
	pix           []float64
	protect       []bool
}

// NewPixelGrid allocates a zeroed (black) grid of the given dimensions.
func NewPixelGrid(width, height int) (*PixelGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, width, height)
	}
	return &PixelGrid{
		width:  width,
		height: height,
		pix:    make([]float64, 3*width*height),
	}, nil
}

// FromImage converts any image.Image into a PixelGrid.
//
// The image is cloned to NRGBA first, so the source is never retained and
// sub-images with non-zero origins are handled uniformly. Alpha is discarded.
func FromImage(img image.Image) (*PixelGrid, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil source image", ErrInvalidImage)
	}
	nrgba := imaging.Clone(img)
	w := nrgba.Bounds().Dx()
	h := nrgba.Bounds().Dy()
	g, err := NewPixelGrid(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*w]
		for x := 0; x < w; x++ {
			i := 3 * (y*w + x)
			g.pix[i+0] = float64(row[4*x+0])
			g.pix[i+1] = float64(row[4*x+1])
			g.pix[i+2] = float64(row[4*x+2])
		}
	}
	return g, nil
}

// Width returns the current number of columns.
func (g *PixelGrid) Width() int { return g.width }

// Height returns the number of rows. Height never changes.
func (g *PixelGrid) Height() int { return g.height }

// empty reports whether the grid is unusable as input.
func (g *PixelGrid) empty() bool {
	return g == nil || len(g.pix) == 0
}

// At returns the value of one channel at (row, col).
func (g *PixelGrid) At(row, col int, ch Channel) (float64, error) {
	if g.empty() {
		return 0, ErrInvalidImage
	}
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, row, col, g.width, g.height)
	}
	if !ch.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownChannel, int(ch))
	}
	return g.at(row, col, ch), nil
}

// Set stores a value into one channel at (row, col).
func (g *PixelGrid) Set(row, col int, ch Channel, v float64) error {
	if g.empty() {
		return ErrInvalidImage
	}
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, row, col, g.width, g.height)
	}
	if !ch.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownChannel, int(ch))
	}
	g.pix[3*(row*g.width+col)+int(ch)] = v
	return nil
}

// at is the unchecked accessor used by the hot DP loops.
func (g *PixelGrid) at(row, col int, ch Channel) float64 {
	return g.pix[3*(row*g.width+col)+int(ch)]
}

// Clone returns an independent deep copy of the grid, protection included.
func (g *PixelGrid) Clone() *PixelGrid {
	if g == nil {
		return nil
	}
	c := &PixelGrid{
		width:  g.width,
		height: g.height,
		pix:    append([]float64(nil), g.pix...),
	}
	if g.protect != nil {
		c.protect = append([]bool(nil), g.protect...)
	}
	return c
}

// Protect marks every pixel inside r (intersected with the grid) so that its
// energy is inflated by a penalty large enough that seams avoid it whenever a
// route around exists. Protection survives seam removals: the marks shift with
// the pixels they cover.
func (g *PixelGrid) Protect(r image.Rectangle) error {
	if g.empty() {
		return ErrInvalidImage
	}
	clipped := r.Intersect(image.Rect(0, 0, g.width, g.height))
	if clipped.Empty() {
		return nil
	}
	if g.protect == nil {
		g.protect = make([]bool, g.width*g.height)
	}
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			g.protect[y*g.width+x] = true
		}
	}
	return nil
}

// Protected reports whether the pixel at (row, col) carries a protection mark.
func (g *PixelGrid) Protected(row, col int) bool {
	if g == nil || g.protect == nil {
		return false
	}
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return g.protect[row*g.width+col]
}

// Image renders the grid back to an 8-bit NRGBA image, clamping each channel
// to [0, 255] and setting alpha to opaque.
func (g *PixelGrid) Image() (*image.NRGBA, error) {
	if g.empty() {
		return nil, ErrInvalidImage
	}
	out := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := 3 * (y*g.width + x)
			out.SetNRGBA(x, y, color.NRGBA{
				R: clampChannel(g.pix[i+0]),
				G: clampChannel(g.pix[i+1]),
				B: clampChannel(g.pix[i+2]),
				A: 255,
			})
		}
	}
	return out, nil
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
