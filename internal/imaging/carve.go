package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
)

// CarveResult contains a width-reduced image encoded as base64 PNG.
type CarveResult struct {
	// Width of the carved image: source width minus SeamsRemoved.
	Width int `json:"width"`

	// Height of the carved image (carving never changes height).
	Height int `json:"height"`

	// SeamsRemoved is the number of vertical seams taken out.
	SeamsRemoved int `json:"seams_removed"`

	// ImageBase64 is the carved image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png" for carve results.
	MimeType string `json:"mime_type"`
}

// CarveWidth removes the given number of minimum-energy vertical seams from
// an image.
//
// Parameters:
//   - img: Source image. Alpha is dropped; carving works on RGB.
//   - seams: Number of seams to remove. Must satisfy 0 <= seams < width so at
//     least one column survives.
//   - protect: Optional regions whose pixels seams must route around when any
//     alternative exists. Regions are clipped to the image; an empty slice
//     protects nothing.
//
// The source image is never modified. Errors from the engine (invalid seam
// count, degenerate input) are returned as-is so callers can match the carve
// package's sentinel errors.
func CarveWidth(img image.Image, seams int, protect []image.Rectangle) (*CarveResult, error) {
	grid, err := carve.FromImage(img)
	if err != nil {
		return nil, err
	}
	for _, r := range protect {
		if err := grid.Protect(r); err != nil {
			return nil, err
		}
	}

	carved, err := carve.ReduceWidth(grid, seams)
	if err != nil {
		return nil, err
	}

	out, err := carved.Image()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode carved image: %w", err)
	}

	return &CarveResult{
		Width:        carved.Width(),
		Height:       carved.Height(),
		SeamsRemoved: seams,
		ImageBase64:  base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:     "image/png",
	}, nil
}
