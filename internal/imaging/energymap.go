package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/blur"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
)

// EnergyMapResult contains the engine's energy function rendered as a
// grayscale image: bright pixels are expensive for a seam to cross, black
// pixels are free.
type EnergyMapResult struct {
	// Width of the map in pixels (same as input).
	Width int `json:"width"`

	// Height of the map in pixels (same as input).
	Height int `json:"height"`

	// MaxEnergy is the largest per-pixel energy found; the grayscale values
	// are normalized against it. Zero means the image is perfectly flat.
	MaxEnergy float64 `json:"max_energy"`

	// BlurRadius echoes the pre-blur that was applied, 0 for none.
	BlurRadius float64 `json:"blur_radius"`

	// ImageBase64 is the grayscale map encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png" for energy maps.
	MimeType string `json:"mime_type"`
}

// EnergyMap renders the gradient energy of every pixel, the same values the
// carver's cost table is built from. It is the main diagnostic for judging
// where seams will flow before committing to a carve.
//
// A positive blurRadius applies a Gaussian blur before measuring gradients,
// which suppresses sensor noise on photographs at the cost of softer edges;
// diagrams and renders are better served by 0.
func EnergyMap(img image.Image, blurRadius float64) (*EnergyMapResult, error) {
	src := img
	if blurRadius > 0 {
		src = blur.Gaussian(img, blurRadius)
	}

	grid, err := carve.FromImage(src)
	if err != nil {
		return nil, err
	}
	w := grid.Width()
	h := grid.Height()

	energies := make([]float64, w*h)
	maxEnergy := 0.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e, err := carve.Energy(grid, y, x)
			if err != nil {
				return nil, err
			}
			energies[y*w+x] = e
			if e > maxEnergy {
				maxEnergy = e
			}
		}
	}

	out := image.NewGray(image.Rect(0, 0, w, h))
	if maxEnergy > 0 {
		for i, e := range energies {
			out.Pix[i] = uint8(e/maxEnergy*255 + 0.5)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode energy map: %w", err)
	}

	return &EnergyMapResult{
		Width:       w,
		Height:      h,
		MaxEnergy:   maxEnergy,
		BlurRadius:  blurRadius,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
